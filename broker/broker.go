package broker

import (
	"encoding/json"
	"log"

	"github.com/go-stomp/stomp/v3"
)

var conn *stomp.Conn

// Connect dials the STOMP broker. The broker is optional: when network or
// host is empty the connection stays nil and every send becomes a no-op, so
// the service runs standalone in development.
func Connect(network, addr string) {
	if network == "" || addr == "" {
		log.Println("Message broker not configured, settlement events disabled")
		return
	}

	c, err := stomp.Dial(network, addr,
		stomp.ConnOpt.Login(envOr("MESSAGE_BROKER_USER", "guest"), envOr("MESSAGE_BROKER_PASSWORD", "guest")),
	)
	if err != nil {
		log.Printf("Failed to connect to message broker at %s: %v", addr, err)
		return
	}

	conn = c
	log.Printf("Connected to message broker at %s", addr)
}

func Disconnect() {
	if conn == nil {
		return
	}
	if err := conn.Disconnect(); err != nil {
		log.Printf("Error disconnecting from message broker: %v", err)
	}
	conn = nil
}

func sendReliable(destination string, payload interface{}) error {
	if conn == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return conn.Send("/queue/"+destination, "application/json", body)
}
