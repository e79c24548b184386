package main

import "github.com/Xae97/TaskFundi/internal/app"

func main() {
	app.Run()
}
