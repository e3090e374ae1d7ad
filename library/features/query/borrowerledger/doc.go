// Package borrowerledger shows what an account currently holds and has reserved.
package borrowerledger
