package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/Garik-/midimsg/pkg/midi"
	"go.uber.org/zap"
)

type sceneMessage struct {
	Channel    uint8  `toml:"channel"`
	Controller uint8  `toml:"controller"`
	Value      uint16 `toml:"value"`
}

type scene struct {
	Message []sceneMessage `toml:"message"`
}

// loadScene reads a TOML file with [[message]] entries and validates every
// entry through the library constructors. The returned messages keep the
// file order, which is also the send order.
func loadScene(path string) ([]midi.ControlChange14BitMessage, error) {
	log := sceneLog.Named("loadScene")

	var s scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}

	log.Debug("scene", zap.String("path", path), zap.Int("messages", len(s.Message)))

	msgs := make([]midi.ControlChange14BitMessage, 0, len(s.Message))
	for i, entry := range s.Message {
		ch, err := midi.NewChannel(entry.Channel)
		if err != nil {
			return nil, fmt.Errorf("load scene: message %d: %w", i, err)
		}
		cn, err := midi.NewControllerNumber(entry.Controller)
		if err != nil {
			return nil, fmt.Errorf("load scene: message %d: %w", i, err)
		}
		v, err := midi.NewU14(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("load scene: message %d: %w", i, err)
		}

		msg, err := midi.NewControlChange14BitMessage(ch, cn, v)
		if err != nil {
			return nil, fmt.Errorf("load scene: message %d: %w", i, err)
		}

		msgs = append(msgs, msg)
	}

	return msgs, nil
}
