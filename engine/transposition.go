package engine

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/dylhunn/dragontoothmg"
)

const (
	// Flags
	AlphaFlag = iota
	BetaFlag
	ExactFlag

	clusterSize = 4
)

type TTEntry struct {
	Hash  uint64
	Move  dragontoothmg.Move
	Score int16
	Depth int8
	Flag  int8
}

type TransTable struct {
	isInitialized bool
	entries       []TTEntry
	clusterCount  uint64
	sizeMB        int
	largePages    bool
	hashFileName  string
}

// Resize reallocates the table to hold roughly mb megabytes of entries.
// Any stored entries are discarded.
func (TT *TransTable) Resize(mb int) {
	if mb < 1 {
		mb = 1
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(mb) * 1024 * 1024
	clusterBytes := entrySize * clusterSize
	clusterCount := totalBytes / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	TT.sizeMB = mb
	TT.clusterCount = clusterCount
	TT.entries = make([]TTEntry, TT.clusterCount*clusterSize)
	TT.isInitialized = true
}

// Clear wipes all entries without changing the table size.
func (TT *TransTable) Clear() {
	for i := range TT.entries {
		TT.entries[i] = TTEntry{}
	}
}

// SetLargePages records the large-memory-page preference and reallocates at
// the current size so the new backing allocation takes effect.
func (TT *TransTable) SetLargePages(on bool) {
	TT.largePages = on
	if TT.isInitialized {
		TT.Resize(TT.sizeMB)
	}
}

func (TT *TransTable) SetHashFileName(name string) {
	TT.hashFileName = name
}

func (TT *TransTable) HashFileName() string { return TT.hashFileName }

func (TT *TransTable) SizeMB() int { return TT.sizeMB }

func (TT *TransTable) Probe(hash uint64) (entry *TTEntry, found bool) {
	if TT.clusterCount == 0 || hash == 0 {
		return nil, false
	}
	clusterIndex := hash % TT.clusterCount
	start := int(clusterIndex * clusterSize)
	for i := 0; i < clusterSize; i++ {
		next := &TT.entries[start+i]
		if next.Hash == hash {
			return next, true
		}
	}
	return nil, false
}

/*
An "always replace within the cluster"-approach: prefer the slot already
holding this hash, then an empty slot, then the shallowest entry.
*/
func (TT *TransTable) Store(hash uint64, depth int8, move dragontoothmg.Move, score int16, flag int8) {
	if TT.clusterCount == 0 {
		return
	}

	clusterIndex := hash % TT.clusterCount
	base := int(clusterIndex * clusterSize)
	targetIdx := -1

	for i := 0; i < clusterSize; i++ {
		idx := base + i
		if TT.entries[idx].Hash == hash {
			targetIdx = idx
			break
		}
	}

	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			idx := base + i
			if TT.entries[idx].Hash == 0 {
				targetIdx = idx
				break
			}
		}
	}

	if targetIdx == -1 {
		targetIdx = base
		minDepth := TT.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			idx := base + i
			if TT.entries[idx].Depth < minDepth {
				minDepth = TT.entries[idx].Depth
				targetIdx = idx
			}
		}
	}

	entry := &TT.entries[targetIdx]
	entry.Hash = hash
	entry.Depth = depth
	entry.Move = move
	entry.Flag = flag
	entry.Score = score
}

// Save writes the whole table to the configured hash file so a long analysis
// session can be resumed later.
func (TT *TransTable) Save() error {
	if TT.hashFileName == "" {
		return fmt.Errorf("no hash file name set")
	}
	file, err := os.Create(TT.hashFileName)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(TT.entries))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, TT.entries); err != nil {
		return err
	}
	return w.Flush()
}

// Load replaces the table contents with a previously saved hash file,
// resizing to whatever the file holds.
func (TT *TransTable) Load() error {
	if TT.hashFileName == "" {
		return fmt.Errorf("no hash file name set")
	}
	file, err := os.Open(TT.hashFileName)
	if err != nil {
		return err
	}
	defer file.Close()

	r := bufio.NewReader(file)
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}
	if count == 0 || count%clusterSize != 0 {
		return fmt.Errorf("corrupt hash file %s", TT.hashFileName)
	}
	entries := make([]TTEntry, count)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return err
	}
	TT.entries = entries
	TT.clusterCount = count / clusterSize
	TT.isInitialized = true
	return nil
}

// LoadEpdToHash reinterprets the configured hash file as an EPD position
// database and preloads every position into the table as an exact entry
// scored with the static evaluation.
func (TT *TransTable) LoadEpdToHash() error {
	if TT.hashFileName == "" {
		return fmt.Errorf("no hash file name set")
	}
	file, err := os.Open(TT.hashFileName)
	if err != nil {
		return err
	}
	defer file.Close()

	if !TT.isInitialized {
		TT.Resize(16)
	}

	loaded := 0
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			continue
		}
		// EPD carries no move counters; complete the FEN before parsing.
		fen := strings.Join(fields[:4], " ") + " 0 1"
		board := dragontoothmg.ParseFen(fen)
		score := Evaluate(&board)
		TT.Store(board.Hash(), 1, 0, int16(score), ExactFlag)
		loaded++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if loaded == 0 {
		return fmt.Errorf("no positions found in %s", TT.hashFileName)
	}
	return nil
}
