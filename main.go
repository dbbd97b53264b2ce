package main

import (
	"fmt"
	"log"

	"github.com/nixxel-company-limited/escpos-driver/adapter"
	"github.com/nixxel-company-limited/escpos-driver/server"
	"github.com/spf13/viper"
)

func newAdapter() (adapter.Adapter, error) {
	switch transport := viper.GetString("TRANSPORT"); transport {
	case "usb":
		vid := uint16(viper.GetUint32("USB_VID"))
		pid := uint16(viper.GetUint32("USB_PID"))
		return adapter.NewUSBAdapter(vid, pid), nil
	case "serial":
		port := viper.GetString("SERIAL_PORT")
		baud := viper.GetInt("SERIAL_BAUD")
		return adapter.NewSerialAdapter(port, baud), nil
	default:
		return nil, fmt.Errorf("unknown TRANSPORT %q, want usb or serial", transport)
	}
}

func main() {
	// Initialize Viper to read from environment variables
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_ADDRESS", "localhost:9100")
	viper.SetDefault("TRANSPORT", "usb")
	viper.SetDefault("USB_VID", 0x04b8) // Epson
	viper.SetDefault("USB_PID", 0x0202)
	viper.SetDefault("SERIAL_PORT", "/dev/ttyUSB0")
	viper.SetDefault("SERIAL_BAUD", 19200)

	address := viper.GetString("SERVER_ADDRESS")
	log.Printf("Server will listen on: %s", address)

	device, err := newAdapter()
	if err != nil {
		log.Fatal(err)
	}
	defer device.Close()

	svr := server.New(device, address)
	if err := svr.Start(); err != nil {
		log.Fatal(err)
	}
}
