package main

import "ngo-admin-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
