package max7219_test

import (
	"log"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/max7219"
	"periph.io/x/devices/v3/max7219/matrix"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	load := gpioreg.ByName("GPIO8")
	if load == nil {
		log.Fatal("LOAD pin not found")
	}

	dev, err := max7219.NewSPI(p, load, &max7219.Opts{
		Modules:  4,
		Rotation: matrix.CounterClockwise,
	})
	if err != nil {
		log.Fatalf("failed to initialize max7219: %v", err)
	}
	defer dev.Halt()

	if err := dev.Scroll("Hello world!", 50*time.Millisecond, time.Second); err != nil {
		log.Fatal(err)
	}
	if err := dev.DisplayTextRight("12:34", true); err != nil {
		log.Fatal(err)
	}
}
