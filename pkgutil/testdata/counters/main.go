package main

import "counters/clamp"

func count(n int) int {
	c := 0
	for i := 0; i < n; i++ {
		c += 2
	}
	return c
}

func main() {
	println(clamp.Percent(count(10)))
}
