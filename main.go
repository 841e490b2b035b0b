/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package main

import "github.com/sony-level/ai/cmd"

func main() {
	cmd.Execute()
}
