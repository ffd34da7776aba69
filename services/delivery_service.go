package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// MaxDeliveryDistance is the delivery radius in meters, roughly 20 miles.
	MaxDeliveryDistance = 32187
	// PrepTimeSeconds is the fixed kitchen preparation time.
	PrepTimeSeconds = 1200
)

type TravelInfo struct {
	DistanceMeters  int64
	DurationSeconds int64
}

// DeliveryService asks a directions API for the driving route between the
// restaurant and a customer address. Lookup failures propagate to the caller;
// there is deliberately no retry or circuit breaking here.
type DeliveryService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	origin  string
}

func NewDeliveryService(baseURL, apiKey, restaurantAddress string) *DeliveryService {
	return &DeliveryService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		origin:  restaurantAddress,
	}
}

// Travel returns distance and duration for driving from the restaurant to
// destination (a one-line address).
func (s *DeliveryService) Travel(destination string) (*TravelInfo, error) {
	q := url.Values{}
	q.Set("origin", s.origin)
	q.Set("destination", flatten(destination))
	q.Set("mode", "driving")
	q.Set("key", s.apiKey)

	resp, err := s.client.Get(s.baseURL + "?" + q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions lookup: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if status := gjson.GetBytes(body, "status").String(); status != "OK" {
		return nil, ErrNoRoute
	}
	leg := gjson.GetBytes(body, "routes.0.legs.0")
	if !leg.Exists() {
		return nil, ErrNoRoute
	}

	return &TravelInfo{
		DistanceMeters:  leg.Get("distance.value").Int(),
		DurationSeconds: leg.Get("duration.value").Int(),
	}, nil
}

// ValidateAddress reports whether the destination is inside the delivery
// radius.
func (s *DeliveryService) ValidateAddress(destination string) error {
	info, err := s.Travel(destination)
	if err != nil {
		return err
	}
	if info.DistanceMeters > MaxDeliveryDistance {
		return ErrAddressOutOfRange
	}
	return nil
}

// EstimateSeconds is prep time plus travel time.
func (s *DeliveryService) EstimateSeconds(destination string) (int64, error) {
	info, err := s.Travel(destination)
	if err != nil {
		return 0, err
	}
	return PrepTimeSeconds + info.DurationSeconds, nil
}

// MapURL builds the embeddable directions map shown on the confirmation page.
func (s *DeliveryService) MapURL(destination string) string {
	q := url.Values{}
	q.Set("origin", s.origin)
	q.Set("destination", flatten(destination))
	q.Set("key", s.apiKey)
	return "https://www.google.com/maps/embed/v1/directions?" + q.Encode()
}

func flatten(addr string) string {
	addr = strings.ReplaceAll(addr, "\r\n", " ")
	addr = strings.ReplaceAll(addr, "\r", " ")
	addr = strings.ReplaceAll(addr, "\n", " ")
	return strings.TrimSpace(addr)
}
