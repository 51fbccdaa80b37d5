package main

import "tutalink_backend/internal/app"

func main() {
	app.Run()
}
