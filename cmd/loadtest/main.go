package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost      = "http://localhost:8080"
	rps             = 20
	duration        = 2 * time.Minute
	events          = 10
	membersPerEvent = 60
)

var intents = []string{"A_TEAM", "B_TEAM", "AB_POSSIBLE", "AB_POSSIBLE", "NONE"}

type RosterMember struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Level       int    `json:"level"`
	Power       int64  `json:"power"`
	IntentType  string `json:"intent_type"`
}

type Event struct {
	EventID string         `json:"event_id"`
	Name    string         `json:"name"`
	Members []RosterMember `json:"members"`
}

var (
	eventIDs []string
	members  = map[string][]string{}
	httpc    = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating events...")

	suffix := time.Now().Unix()
	for e := 1; e <= events; e++ {
		eventID := fmt.Sprintf("dw-%d-%02d", suffix, e)
		event := Event{EventID: eventID, Name: fmt.Sprintf("Desert war %02d", e)}

		for u := 1; u <= membersPerEvent; u++ {
			uid := fmt.Sprintf("%s-u%03d", eventID, u)
			event.Members = append(event.Members, RosterMember{
				UserID:      uid,
				DisplayName: fmt.Sprintf("Player_%d_%d", e, u),
				Level:       rand.IntN(60) + 1,
				Power:       rand.Int64N(50_000_000),
				IntentType:  intents[rand.IntN(len(intents))],
			})
			members[eventID] = append(members[eventID], uid)
		}

		status, err := postJSON(targetHost+"/event/add", event)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN event/add returned %d\n", status)
			continue
		}

		eventIDs = append(eventIDs, eventID)
		time.Sleep(20 * time.Millisecond)
	}

	log.Printf("Seed completed: events=%d\n", len(eventIDs))
	return nil
}

func jsonTarget(t *vegeta.Target, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	t.Method = http.MethodPost
	t.URL = targetHost + path
	t.Body = payload
	t.Header = map[string][]string{"Content-Type": {"application/json"}}
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		eventID := eventIDs[rand.IntN(len(eventIDs))]
		r := rand.Float64()

		// 65% GET roster/get
		if r < 0.65 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/roster/get?event_id=%s", targetHost, eventID)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 25% POST roster/setPosition
		if r < 0.90 {
			ids := members[eventID]
			return jsonTarget(t, "/roster/setPosition", map[string]any{
				"event_id": eventID,
				"user_id":  ids[rand.IntN(len(ids))],
				"position": rand.IntN(12) + 1,
			})
		}

		// 8% POST roster/reload
		if r < 0.98 {
			return jsonTarget(t, "/roster/reload", map[string]string{"event_id": eventID})
		}

		// 2% POST roster/save
		return jsonTarget(t, "/roster/save", map[string]string{"event_id": eventID})
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "roster-load") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
}

func main() {
	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	if len(eventIDs) == 0 {
		log.Fatal("Seed failed: no events created")
	}

	runAttack()
}
