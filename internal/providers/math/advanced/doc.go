// Package advanced provides combinatorics, number theory and calculus tools.
package advanced
