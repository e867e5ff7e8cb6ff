package uci

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/OhJayGee/SugaR/engine"
)

// 'On change' actions, triggered by an option's value change

func onClearHash(*Option) { engine.Clear() }

func onHashSize(o *Option) { engine.TT.Resize(o.Int()) }

func onLargePages(o *Option) { engine.TT.SetLargePages(o.Bool()) }

func onLogger(o *Option) {
	if err := engine.Logger.Start(o.Str()); err != nil {
		fmt.Println("info string", err)
	}
}

func onThreads(o *Option) { engine.Threads.Set(o.Int()) }

func onTbPath(o *Option) { engine.Syzygy.Init(o.Str()) }

func onTbProbeDepth(o *Option) { engine.Syzygy.SetProbeDepth(o.Int()) }

func onTbProbeLimit(o *Option) { engine.Syzygy.SetProbeLimit(o.Int()) }

func onHashFile(o *Option) { engine.TT.SetHashFileName(o.Str()) }

func onSaveHashToFile(*Option) {
	if err := engine.TT.Save(); err != nil {
		fmt.Println("info string", err)
	}
}

func onLoadHashFromFile(*Option) {
	if err := engine.TT.Load(); err != nil {
		fmt.Println("info string", err)
	}
}

func onLoadEpdToHash(*Option) {
	if err := engine.TT.LoadEpdToHash(); err != nil {
		fmt.Println("info string", err)
	}
}

func onBookFile(o *Option) {
	if err := engine.Book.Init(o.Str()); err != nil {
		fmt.Println("info string", err)
	}
}

func onBestBookMove(o *Option) { engine.Book.SetBestBookMove(o.Bool()) }

func onBookDepth(o *Option) { engine.Book.SetBookDepth(o.Int()) }

// Init populates the map with the engine's hard-coded default options.
func Init(o *OptionsMap) {
	// At most 2^32 clusters.
	maxHashMB := 2048
	if strconv.IntSize == 64 {
		maxHashMB = 131072
	}

	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}

	o.Add("Debug Log File", NewString("", onLogger))
	o.Add("Contempt", NewSpin(21, -100, 100, nil))
	o.Add("Analysis_CT", NewCombo("Both var Off var White var Black var Both", "Both", nil))
	o.Add("Threads", NewSpin(float64(n), 1, 512, onThreads))
	o.Add("Hash", NewSpin(16, 1, maxHashMB, onHashSize))
	o.Add("BookFile", NewString("Cerebellum_Light_Poly.bin", onBookFile))
	o.Add("BestBookMove", NewCheck(true, onBestBookMove))
	o.Add("BookDepth", NewSpin(255, 1, 255, onBookDepth))
	o.Add("Clear Hash", NewButton(onClearHash))
	o.Add("Ponder", NewCheck(false, nil))
	o.Add("MultiPV", NewSpin(1, 1, 500, nil))
	o.Add("Move Overhead", NewSpin(30, 0, 5000, nil))
	o.Add("UCI_Chess960", NewCheck(false, nil))
	o.Add("NeverClearHash", NewCheck(false, nil))
	o.Add("HashFile", NewString("hash.hsh", onHashFile))
	o.Add("SaveHashtoFile", NewButton(onSaveHashToFile))
	o.Add("LoadHashfromFile", NewButton(onLoadHashFromFile))
	o.Add("LoadEpdToHash", NewButton(onLoadEpdToHash))
	o.Add("UCI_AnalyseMode", NewCheck(false, nil))
	o.Add("Large Pages", NewCheck(true, onLargePages))
	o.Add("ICCF Analyzes", NewSpin(0, 0, 8, nil))
	o.Add("NullMove", NewCheck(true, nil))
	o.Add("SyzygyPath", NewString("<empty>", onTbPath))
	o.Add("SyzygyProbeDepth", NewSpin(1, 1, 100, onTbProbeDepth))
	o.Add("SyzygyProbeLimit", NewSpin(7, 0, 7, onTbProbeLimit))
}
