// Command monkeyapp browses a small catalog of monkey species.
//
// Usage:
//
//	monkeyapp                 interactive menu
//	monkeyapp list            print every monkey
//	monkeyapp find <name>     show one monkey
//	monkeyapp random          show a random monkey
//	monkeyapp serve           read-only HTTP API
//
// See --help for all available options.
package main

func main() {
	Execute()
}
