// Command mazegen generates, solves and exports rectangular mazes.
package main

func main() {
	Execute()
}
