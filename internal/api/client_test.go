package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetWorkouts(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		wantErr    bool
		wantCount  int
	}{
		{
			name:       "successful request",
			body:       `[{"title":"Leg Day","date":"2024-02-05","exercises":["Squat","Lunge"]},{"title":"Push","date":"2024-02-07","exercises":[]}]`,
			statusCode: http.StatusOK,
			wantCount:  2,
		},
		{
			name:       "empty list",
			body:       `[]`,
			statusCode: http.StatusOK,
			wantCount:  0,
		},
		{
			name:       "server error",
			body:       `boom`,
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
		},
		{
			name:       "not an array",
			body:       `{"title":"Leg Day"}`,
			statusCode: http.StatusOK,
			wantErr:    true,
		},
		{
			name:       "malformed json",
			body:       `[{"title":`,
			statusCode: http.StatusOK,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second)

			workouts, err := client.GetWorkouts(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetWorkouts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if workouts == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(workouts) != tt.wantCount {
				t.Errorf("expected %d workouts, got %d", tt.wantCount, len(workouts))
			}
		})
	}
}

func TestGetWorkouts_PreservesOrderAndFields(t *testing.T) {
	want := []Workout{
		{Title: "Leg Day", Date: "2024-02-05", Exercises: []string{"Squat", "Lunge"}},
		{Title: "Cardio", Date: "2024-02-05", Exercises: []string{"Row"}},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	got, err := NewClient(server.URL, 0).GetWorkouts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Leg Day" || got[1].Title != "Cardio" {
		t.Fatalf("unexpected workouts: %+v", got)
	}
	if got[0].Exercises[1] != "Lunge" {
		t.Errorf("expected second exercise Lunge, got %q", got[0].Exercises[1])
	}
}

func TestGetWorkouts_StatusErrorIsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 0).GetWorkouts(context.Background())
	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("expected 404, got %d", apiErr.StatusCode)
	}
	if IsCanceled(err) {
		t.Error("status error must not be reported as cancellation")
	}
}

func TestGetWorkouts_Canceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := NewClient(server.URL, 0).GetWorkouts(ctx)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		if !IsCanceled(err) {
			t.Errorf("expected cancellation error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not return after cancel")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	if c.Endpoint() != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", c.Endpoint())
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", c.httpClient.Timeout)
	}
}
