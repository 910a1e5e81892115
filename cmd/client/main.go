// Command client is a small terminal front end for the asknow JSON
// endpoint: it sends one question and prints the resolved summaries.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jankohoener/asknow/models"
)

func main() {
	baseURL := flag.String("a", "http://localhost:8080", "base URL of the asknow server")
	timeout := flag.Duration("t", 15*time.Second, "request timeout")
	flag.Parse()

	question := strings.Join(flag.Args(), " ")
	if question == "" {
		fmt.Fprintln(os.Stderr, "usage: client [-a address] [-t timeout] <question>")
		os.Exit(2)
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(*baseURL, "/")).
		SetTimeout(*timeout)

	var answer models.Answer
	resp, err := client.R().
		SetQueryParam("q", question).
		SetResult(&answer).
		Get("/asknow/json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode() != 200 {
		fmt.Fprintf(os.Stderr, "server answered %d: %s\n", resp.StatusCode(), resp.Body())
		os.Exit(1)
	}

	if answer.Failed() {
		fmt.Fprintf(os.Stderr, "no answer (code %d): %s\n", answer.ErrCode, answer.Message)
		os.Exit(1)
	}

	for _, summary := range answer.Information {
		fmt.Printf("== %s ==\n", summary.Title)
		if summary.Abstract != "" {
			fmt.Println(summary.Abstract)
		}
		if summary.WPLink != "" {
			fmt.Println(summary.WPLink)
		}
		fmt.Println()
	}
}
