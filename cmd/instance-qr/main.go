package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mbenaiss/whatsapp-helpdesk/whatsapp"
)

func main() {
	number := flag.String("number", "", "WhatsApp instance number, e.g. +1234567895")
	png := flag.String("png", "", "also write the QR code as a PNG to this file")
	size := flag.Int("size", 256, "PNG size in pixels")
	flag.Parse()

	if *number == "" {
		flag.Usage()
		os.Exit(2)
	}

	link, err := whatsapp.Link(*number)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", *number, err)
	}

	fmt.Println(link)
	if err := whatsapp.PrintQR(os.Stdout, *number); err != nil {
		log.Fatalf("Failed to print QR code: %v", err)
	}

	if *png != "" {
		data, err := whatsapp.QRCode(*number, *size)
		if err != nil {
			log.Fatalf("Failed to render QR code: %v", err)
		}
		if err := os.WriteFile(*png, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *png, err)
		}
	}
}
