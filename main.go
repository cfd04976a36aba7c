/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/takaraplatform/apiparity/cmd"

func main() {
	cmd.Execute()
}
