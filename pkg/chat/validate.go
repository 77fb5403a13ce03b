package chat

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the shape of data read back from storage.
func (d Data) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidData, err)
	}
	seen := make(map[string]string)
	for serverID, channels := range d.Channels {
		for _, channel := range channels {
			if owner, ok := seen[channel.ID]; ok {
				return fmt.Errorf("%w: channel %q owned by both %q and %q", ErrInvalidData, channel.ID, owner, serverID)
			}
			seen[channel.ID] = serverID
		}
	}
	return nil
}

// Repair makes sure every channel of every server has a message sequence.
func (d *Data) Repair() {
	if d.Channels == nil {
		d.Channels = make(map[string][]Channel)
	}
	if d.Messages == nil {
		d.Messages = make(map[string][]Message)
	}
	for _, server := range d.Servers {
		for _, channel := range d.Channels[server.ID] {
			if d.Messages[channel.ID] == nil {
				d.Messages[channel.ID] = []Message{}
			}
		}
	}
}
