package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
)

// DecodeFrame parses an envelope produced by the emit helper into a Frame.
func DecodeFrame(data []byte) (*frame.Frame, error) {
	var f frame.Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding frame envelope: %w", err)
	}
	return &f, nil
}

// DecodeYears parses a JSON integer array into a year slice.
func DecodeYears(data []byte) ([]int, error) {
	var years []int
	if err := json.Unmarshal(data, &years); err != nil {
		return nil, fmt.Errorf("decoding year list: %w", err)
	}
	return years, nil
}

// EncodeFrame serializes a Frame in envelope form for the tidy round-trip.
func EncodeFrame(f *frame.Frame) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encoding frame envelope: %w", err)
	}
	return data, nil
}
