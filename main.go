package main

import "github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/cmd"

func main() {
	cmd.Execute()
}
