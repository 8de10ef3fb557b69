//go:build latticedebug

package algebra

// Built with -tags latticedebug, NewElem rejects residues outside [0, Q).
const checkInvariants = true
