package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Garik-/midimsg/pkg/midi"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver
	"go.uber.org/zap"
)

var (
	listFlag  = flag.Bool("list", false, "List available MIDI output ports")
	portFlag  = flag.String("port", "", "Output port name, substring match, first port if empty")
	chFlag    = flag.Uint("ch", 0, "MIDI channel, 0-15")
	ccFlag    = flag.Uint("cc", 0, "MSB controller number, 0-31")
	valFlag   = flag.Uint("val", 0, "14-bit value, 0-16383")
	sceneFlag = flag.String("f", "", "The path to a TOML scene file with [[message]] entries,\nsent in file order instead of -ch/-cc/-val")
	dryFlag   = flag.Bool("dry", false, "Print wire bytes instead of sending")
	debugFlag = flag.Bool("debug", false, "Enable debug logging")
)

func listPorts() {
	outs := gomidi.GetOutPorts()
	if len(outs) == 0 {
		fmt.Println("no MIDI output ports")
		return
	}
	for i, out := range outs {
		fmt.Printf("%d: %s\n", i, out.String())
	}
}

func findOutPort(name string) (drivers.Out, error) {
	outs := gomidi.GetOutPorts()
	if len(outs) == 0 {
		return nil, fmt.Errorf("no MIDI output ports")
	}

	if name == "" {
		return outs[0], nil
	}

	name = strings.ToLower(name)
	for _, out := range outs {
		if strings.Contains(strings.ToLower(out.String()), name) {
			return out, nil
		}
	}

	return nil, fmt.Errorf("no MIDI output port matches %q", name)
}

func messageFromFlags() (midi.ControlChange14BitMessage, error) {
	// reject oversized flag values before they are narrowed to the
	// constructor argument types, otherwise e.g. -ch 256 truncates to 0
	if *chFlag > uint(midi.ChannelMax) {
		return midi.ControlChange14BitMessage{}, fmt.Errorf(
			"%w - channel %d does not fit in 4 bits", midi.ErrOutOfRange, *chFlag)
	}
	if *ccFlag > uint(midi.ControllerNumberMax) {
		return midi.ControlChange14BitMessage{}, fmt.Errorf(
			"%w - controller number %d does not fit in 7 bits", midi.ErrOutOfRange, *ccFlag)
	}
	if *valFlag > uint(midi.U14Max) {
		return midi.ControlChange14BitMessage{}, fmt.Errorf(
			"%w - value %d does not fit in 14 bits", midi.ErrOutOfRange, *valFlag)
	}

	ch, err := midi.NewChannel(uint8(*chFlag))
	if err != nil {
		return midi.ControlChange14BitMessage{}, err
	}
	cn, err := midi.NewControllerNumber(uint8(*ccFlag))
	if err != nil {
		return midi.ControlChange14BitMessage{}, err
	}
	v, err := midi.NewU14(uint16(*valFlag))
	if err != nil {
		return midi.ControlChange14BitMessage{}, err
	}
	return midi.NewControlChange14BitMessage(ch, cn, v)
}

func printWireBytes(msgs []midi.ControlChange14BitMessage) {
	for _, msg := range msgs {
		for _, sm := range msg.ToRawShortMessages() {
			b := sm.Bytes()
			fmt.Printf("% X\n", b[:])
		}
	}
}

func sendMessages(out drivers.Out, msgs []midi.ControlChange14BitMessage) error {
	send, err := gomidi.SendTo(out)
	if err != nil {
		return err
	}

	log := sendLog.Named("sendMessages")

	for _, msg := range msgs {
		log.Debug("message",
			zap.Uint8("channel", msg.Channel().Uint8()),
			zap.Uint8("controller", msg.MSBControllerNumber().Uint8()),
			zap.Uint16("value", msg.Value().Uint16()))

		// the MSB half goes out first, then the LSB half
		for _, sm := range msg.ToRawShortMessages() {
			err := send(gomidi.ControlChange(
				sm.Channel().Uint8(),
				sm.ControllerNumber().Uint8(),
				sm.Value().Uint8()))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	defer gomidi.CloseDriver()

	if *debugFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync()
		enableDebugLogging(l)
	}

	if *listFlag {
		listPorts()
		return
	}

	var msgs []midi.ControlChange14BitMessage

	if *sceneFlag != "" {
		var err error
		msgs, err = loadScene(*sceneFlag)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		msg, err := messageFromFlags()
		if err != nil {
			log.Fatal(err)
		}
		msgs = append(msgs, msg)
	}

	if *dryFlag {
		printWireBytes(msgs)
		return
	}

	out, err := findOutPort(*portFlag)
	if err != nil {
		log.Fatal(err)
	}

	if err = sendMessages(out, msgs); err != nil {
		log.Fatal(err)
	}
}
