package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	baseURL = flag.String("url", "http://localhost:3000/api", "API base url")
	token   = flag.String("token", os.Getenv("SMOKE_TOKEN"), "bearer token (see cmd/devtoken)")
	skipGen = flag.Bool("skip-generate", false, "skip the comic generation step")
)

func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, *baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if *token != "" {
		req.Header.Set("Authorization", "Bearer "+*token)
	}

	// Generation calls the LLM plus one image per panel
	client := &http.Client{Timeout: 10 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(title, method, url string, body interface{}, wantStatus int) []byte {
	color.Yellow("\n%s", title)
	resp, respBody, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode != wantStatus {
		color.Red("Status: %s (want %d)", resp.Status, wantStatus)
		prettyPrint(respBody)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(respBody)
	return respBody
}

func main() {
	flag.Parse()
	if *token == "" {
		color.Red("A token is required (-token or SMOKE_TOKEN)")
		os.Exit(1)
	}

	color.Cyan("Starting comic story API smoke test against %s\n", *baseURL)

	created := step("1. Create story", http.MethodPost, "/stories", map[string]string{
		"title": "The Lighthouse Keeper",
		"notes": "An old keeper finds a message in a bottle and sets out across a stormy sea.",
		"theme": "vintage",
	}, http.StatusOK)

	var createResp struct {
		Id string `json:"id"`
	}
	if err := json.Unmarshal(created, &createResp); err != nil || createResp.Id == "" {
		color.Red("Create response did not contain an id")
		os.Exit(1)
	}

	step("2. List stories", http.MethodGet, "/stories", nil, http.StatusOK)
	step("3. Show story", http.MethodGet, "/stories/"+createResp.Id, nil, http.StatusOK)

	if !*skipGen {
		step("4. Generate comic panels", http.MethodPost, "/stories/"+createResp.Id+"/generate", nil, http.StatusOK)
		step("5. Show story with panels", http.MethodGet, "/stories/"+createResp.Id, nil, http.StatusOK)
	}

	step("6. Delete story", http.MethodDelete, "/stories/"+createResp.Id, nil, http.StatusOK)
	step("7. Show deleted story", http.MethodGet, "/stories/"+createResp.Id, nil, http.StatusNotFound)

	color.Cyan("\nSmoke test passed")
}
