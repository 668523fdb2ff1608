package main

import "lvlreq/bot"

func main() {
	bot.Start()
}
