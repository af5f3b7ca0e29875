// README: Offline chat demo; drives the dialogue engine from stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"skybot/internal/modules/dialogue"
	"skybot/internal/modules/flights"
)

func main() {
	lang := flag.String("lang", "en", "reply language (en, hi, es, fr, de)")
	flag.Parse()

	flightSvc := flights.NewService(nil, nil)
	engine := dialogue.NewService(flightSvc, flightSvc)
	ctx := context.Background()

	fmt.Println("SkyBot chat demo. Type a message, or 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		resp, err := engine.Reply(ctx, line, *lang)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			resp = dialogue.Apology()
		}

		fmt.Println(resp.Text)
		for _, offer := range resp.FlightResults {
			fmt.Printf("  %-22s %-8s %s %s -> %s %s  Rs.%d\n",
				offer.Airline, offer.FlightNumber,
				offer.Departure.Time, offer.Departure.Airport,
				offer.Arrival.Time, offer.Arrival.Airport,
				offer.Price)
		}
		if fs := resp.FlightStatus; fs != nil {
			fmt.Printf("  %s: %s (gate %s, terminal %d)\n",
				fs.FlightNumber, fs.Status, fs.Gate, fs.Terminal)
			if fs.Delay != nil {
				fmt.Printf("  delayed by %s\n", *fs.Delay)
			}
		}
		if len(resp.Suggestions) > 0 {
			fmt.Println("  try:", strings.Join(resp.Suggestions, " | "))
		}
	}
}
