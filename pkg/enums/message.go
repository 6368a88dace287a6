package enums

import "fmt"

// MessageType distinguishes user text from system generated messages.
type MessageType string

const (
	MessageTypeText           MessageType = "text"
	MessageTypeImage          MessageType = "image"
	MessageTypeSystem         MessageType = "system"
	MessageTypeExchangeUpdate MessageType = "exchange_update"
)

var validMessageTypes = []MessageType{
	MessageTypeText,
	MessageTypeImage,
	MessageTypeSystem,
	MessageTypeExchangeUpdate,
}

func (m MessageType) String() string {
	return string(m)
}

// IsValid checks whether the given type matches the canonical enum.
func (m MessageType) IsValid() bool {
	for _, candidate := range validMessageTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMessageType converts raw strings into MessageType.
func ParseMessageType(value string) (MessageType, error) {
	for _, candidate := range validMessageTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid message type %q", value)
}
