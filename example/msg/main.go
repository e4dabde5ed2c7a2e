package main

import (
	"encoding/json"
	"fmt"

	"city-weather/pkg/msg"
)

type candidate struct {
	Name       string `json:"name"`
	Population int64  `json:"population"`
}

func main() {
	// Remember to set the MESSAGES_FILE_PATH env. Default location in init is configs/messages.yml
	msg.Init("example/msg/messages.yml")
	var messageWithOneField string = "app.field.one"

	// Message without fields
	fmt.Println(msg.GetMessage("app.message"))

	// Message with one field
	fmt.Println(msg.GetMessage(messageWithOneField, "Berlin"))

	fmt.Println(msg.GetMessage("app.field.two", "Berlin", 21.4))

	// Load another messages file
	msg.Init("example/msg/example.yml")

	// Old and new messages loaded
	fmt.Println(msg.GetMessage("app.message"))
	fmt.Println(msg.GetMessage("app.new", 5))

	// Not found message
	fmt.Println(msg.GetMessage("app.not"))

	// Struct field
	example := candidate{
		Name:       "Springfield",
		Population: 116250,
	}
	var logJSON, _ = json.Marshal(example)
	fmt.Println(msg.GetMessage(messageWithOneField, string(logJSON)))
	fmt.Println(msg.GetMessage(messageWithOneField, example))

}
