//go:build !latticedebug

package algebra

const checkInvariants = false
