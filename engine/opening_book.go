package engine

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strings"
)

// PolyBook is the opening book. Book files are CSV records of
// "eco,name,movetext" where movetext is a numbered move list; move numbers
// are stripped on load and the remaining tokens are coordinate moves.
type PolyBook struct {
	lines        [][]string
	bestBookMove bool
	bookDepth    int
}

var moveNumbers = regexp.MustCompile(`([0-9]+\.)`)

// Init loads the book at path, replacing any previous book. A missing or
// malformed file leaves the book empty.
func (pb *PolyBook) Init(path string) error {
	pb.lines = nil
	if path == "" || path == "<empty>" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(record) < 3 {
			continue
		}
		moves := strings.Fields(moveNumbers.ReplaceAllString(record[2], ""))
		if len(moves) > 0 {
			pb.lines = append(pb.lines, moves)
		}
	}
	return nil
}

func (pb *PolyBook) SetBestBookMove(on bool) { pb.bestBookMove = on }

func (pb *PolyBook) SetBookDepth(d int) { pb.bookDepth = d }

func (pb *PolyBook) Loaded() bool { return len(pb.lines) > 0 }

// Probe returns a book continuation for the moves played so far. With
// BestBookMove set the most frequent continuation wins; otherwise one is
// picked at random among the candidates. The book stops answering once the
// game is deeper than BookDepth plies.
func (pb *PolyBook) Probe(played []string) (string, bool) {
	if len(pb.lines) == 0 {
		return "", false
	}
	if pb.bookDepth > 0 && len(played) >= pb.bookDepth {
		return "", false
	}

	counts := make(map[string]int)
	var candidates []string
	for _, line := range pb.lines {
		if len(line) <= len(played) {
			continue
		}
		match := true
		for i, mv := range played {
			if line[i] != mv {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		next := line[len(played)]
		if counts[next] == 0 {
			candidates = append(candidates, next)
		}
		counts[next]++
	}
	if len(candidates) == 0 {
		return "", false
	}

	if pb.bestBookMove {
		best := candidates[0]
		for _, c := range candidates[1:] {
			if counts[c] > counts[best] {
				best = c
			}
		}
		return best, true
	}
	return candidates[rand.Intn(len(candidates))], true
}
