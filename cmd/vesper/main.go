package main

import (
	"fmt"
	"os"
	"strconv"

	"go.vesper.dev/pkg"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Println("Expected arguments: source file [heap capacity]")
		return
	}

	capacity := 0
	if len(os.Args) == 3 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 0 {
			fmt.Println("Heap capacity must be a non-negative integer")
			os.Exit(1)
		}
		capacity = n
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := vesper.Run(string(src), capacity, os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
