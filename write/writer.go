package write

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type WriteSettings struct {
	DisplayWriters []Writer // Where should the display be written. Nil writes nothing
}

// DefaultWriteSettings returns settings with no writers, so a run prints
// nothing unless the caller adds one
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the run for future
	// postprocessing. The data is saved as a csv and a row is written
	// every iteration of the root finder
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the run.
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

func writeRunHeader(w io.Writer) error {
	_, err := io.WriteString(w, "Beginning Newton-Raphson\n\n")
	return err
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display displays the values of each iteration. Displayer writers
// only print at specific times, Logger writers log at every iteration.
// Assumption is that headings don't change
type Display struct {
	displayValues []*Value

	headings []string
	values   []string

	maxLengths []int

	lastHeadingDisplay int
	lastValueDisplay   time.Time

	existsDisplayer bool
	existsLogger    bool

	writers []Writer

	dataAdders []DataAdder
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	// headings and values are displayed on first iteration
	d.lastHeadingDisplay = headingInterval + 1
	d.lastValueDisplay = time.Now().Add(-valueInterval)
	d.existsDisplayer = false
	d.existsLogger = false

	d.writers = nil
	if w != nil {
		d.writers = w.DisplayWriters
	}
	if len(d.writers) == 0 {
		return nil
	}
	d.accumulateValues()

	// get all of the headings
	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			return fmt.Errorf("display: unknown writer type %d", w.T)
		case Logger:
			d.existsLogger = true
			if err := writeCSVRow(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
			if err := writeRunHeader(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Iterate is the write action performed by display at every iteration
// of the algorithm, as set by the values in the Writers and dataAdders which
// were set during initialization
func (d *Display) Iterate() error {
	var displayValues bool
	var displayHeadings bool

	if d.existsDisplayer {
		displayValues = d.shouldDisplayValues()
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.lastHeadingDisplay++
		}

		displayHeadings = d.shouldDisplayHeadings()
		if displayHeadings {
			d.lastHeadingDisplay = 0
		}
	}

	// only accumulate values if needed
	if d.existsLogger || displayValues || displayHeadings {
		d.accumulateValues()
		d.values = d.values[:0]
		for _, v := range d.displayValues {
			d.values = append(d.values, valueToString(v.Value))
		}
	}

	// Find the max length of heading and value
	if displayValues || displayHeadings {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			d.maxLengths = append(d.maxLengths, len(v))
			if len(d.headings[i]) > len(v) {
				d.maxLengths[i] = len(d.headings[i])
			}
		}
	}
	for _, w := range d.writers {
		switch w.T {
		case Logger:
			if err := writeCSVRow(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if displayValues {
				if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *Display) shouldDisplayValues() bool {
	// Limits printing with really quick functions
	return time.Since(d.lastValueDisplay) > valueInterval
}

func (d *Display) shouldDisplayHeadings() bool {
	// Display headings again after a certain number of value printings
	return d.lastHeadingDisplay > headingInterval
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeCSVRow writes one comma separated line
func writeCSVRow(w io.Writer, row []string) error {
	_, err := io.WriteString(w, strings.Join(row, ",")+"\n")
	return err
}

func valueToString(v interface{}) string {
	switch v := v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
