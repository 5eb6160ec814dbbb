// Package labels implements the naming convention trainers use to store
// several drawn variants of one symbol: "<label>-<variant>" and
// "<label>-train-<variant>". Recognizers treat names as opaque strings.
package labels

import (
	"strconv"
	"strings"
)

const trainInfix = "-train-"

func Variant(label string, i int) string {
	return label + "-" + strconv.Itoa(i)
}

func Train(label string, i int) string {
	return label + trainInfix + strconv.Itoa(i)
}

// Split returns the label and variant index encoded in name. ok is false
// when name carries no numeric suffix, in which case label is name itself.
func Split(name string) (label string, variant int, ok bool) {
	idx := strings.LastIndex(name, "-")
	if idx <= 0 {
		return name, 0, false
	}
	n, err := strconv.Atoi(name[idx+1:])
	if err != nil || n < 0 {
		return name, 0, false
	}
	label = name[:idx]
	label = strings.TrimSuffix(label, trainInfix[:len(trainInfix)-1])
	if label == "" {
		return name, 0, false
	}
	return label, n, true
}

// Label is Split without the variant.
func Label(name string) string {
	label, _, _ := Split(name)
	return label
}
