// Package study holds the sagittal alignment measurements charted next to
// the animation: mean vertebral angles in degrees for a neutral head
// position versus texting, by posture.
package study

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPosture is returned for postures outside the dataset.
var ErrUnknownPosture = errors.New("study: unknown posture")

// Posture is the body position a measurement was taken in.
type Posture string

const (
	Standing Posture = "standing"
	Sitting  Posture = "sitting"
)

// DefaultPosture is the posture shown first.
const DefaultPosture = Sitting

// Segment names a measured cervical level.
type Segment string

const (
	SegmentFMC2 Segment = "FM-C2"
	SegmentC1C2 Segment = "C1-C2"
	SegmentC3C4 Segment = "C3-C4"
	SegmentAOL  Segment = "AOL"
)

// ChartScale is the angle (degrees) a full-width bar represents.
const ChartScale = 35.0

// Measurement is a pair of mean angles in degrees.
type Measurement struct {
	Neutral float64 `json:"neutral" yaml:"neutral"`
	Texting float64 `json:"texting" yaml:"texting"`
}

// Delta is the change from neutral to texting (negative means the angle
// closed).
func (m Measurement) Delta() float64 { return m.Texting - m.Neutral }

// Fractions returns both angles as a share of ChartScale.
func (m Measurement) Fractions() (neutral, texting float64) {
	return m.Neutral / ChartScale, m.Texting / ChartScale
}

// Row is one charted segment.
type Row struct {
	Segment     Segment     `json:"segment" yaml:"segment"`
	Description string      `json:"description" yaml:"description"`
	Measurement Measurement `json:"measurement" yaml:"measurement"`
}

// Loss returns the angle lost while texting. It reports false for the
// overall lordosis angle and for segments that did not close.
func (r Row) Loss() (float64, bool) {
	if r.Segment == SegmentAOL || r.Measurement.Texting >= r.Measurement.Neutral {
		return 0, false
	}
	return r.Measurement.Neutral - r.Measurement.Texting, true
}

var segments = []Segment{SegmentFMC2, SegmentC1C2, SegmentC3C4, SegmentAOL}

var descriptions = map[Segment]string{
	SegmentFMC2: "Occipito-Cervical (Upper Neck)",
	SegmentC1C2: "Atlanto-Axial (Rotation Unit)",
	SegmentC3C4: "Mid-Cervical Segment",
	SegmentAOL:  "Overall Angle of Lordosis",
}

var data = map[Posture]map[Segment]Measurement{
	Standing: {
		SegmentFMC2: {Neutral: 28.24, Texting: 17.96},
		SegmentC1C2: {Neutral: 29.44, Texting: 21.59},
		SegmentC3C4: {Neutral: 7.14, Texting: 4.14},
		SegmentAOL:  {Neutral: 12.35, Texting: 10.46},
	},
	Sitting: {
		SegmentFMC2: {Neutral: 28.08, Texting: 17.13},
		SegmentC1C2: {Neutral: 28.15, Texting: 21.11},
		SegmentC3C4: {Neutral: 6.24, Texting: 4.32},
		SegmentAOL:  {Neutral: 9.76, Texting: 11.45},
	},
}

// Postures lists the postures in display order.
func Postures() []Posture { return []Posture{Standing, Sitting} }

// ParsePosture accepts a posture name in any case.
func ParsePosture(s string) (Posture, error) {
	p := Posture(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := data[p]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPosture, s)
	}
	return p, nil
}

// Segments returns the measured segments in chart order.
func Segments() []Segment {
	return append([]Segment(nil), segments...)
}

// Description returns the anatomical name of seg, or "" if unknown.
func Description(seg Segment) string { return descriptions[seg] }

// Lookup returns the measurement for seg in posture p.
func Lookup(p Posture, seg Segment) (Measurement, bool) {
	m, ok := data[p][seg]
	return m, ok
}

// Rows returns the chart rows for p in segment order.
func Rows(p Posture) ([]Row, error) {
	byseg, ok := data[p]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPosture, p)
	}
	rows := make([]Row, 0, len(segments))
	for _, seg := range segments {
		rows = append(rows, Row{Segment: seg, Description: descriptions[seg], Measurement: byseg[seg]})
	}
	return rows, nil
}

// Fact is one headline figure of the study protocol.
type Fact struct {
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	Detail string `json:"detail" yaml:"detail"`
}

// Methods summarizes how the measurements were collected.
func Methods() []Fact {
	return []Fact{
		{Label: "Sample Size", Value: "34", Detail: "Healthy Volunteers"},
		{Label: "Age Range", Value: "20-39", Detail: "Years Old"},
		{Label: "Task Duration", Value: "10-15", Detail: "Minutes Texting"},
		{Label: "States Measured", Value: "4", Detail: "Sit/Stand x Neutral/Text"},
	}
}
