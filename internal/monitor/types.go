package monitor

import "time"

// MemPoint is a composite graph point: two stacked quantities under a ceiling.
// Val1 <= Val2 <= Total is expected but not enforced.
type MemPoint struct {
	Val1  uint64
	Val2  uint64
	Total uint64
}

// CPUCounters are the cumulative jiffy counters of the aggregate cpu line.
type CPUCounters struct {
	Total uint64
	Idle  uint64
}

// NetCounters are the cumulative counters of the watched network interface.
type NetCounters struct {
	Tx     uint64
	Errs   uint64
	Primed bool // false until the first reading has been stored
}

// RateState holds the previous cumulative counters used for delta rates.
// It is owned by the Sampler and overwritten once per tick.
type RateState struct {
	CPU CPUCounters
	Net NetCounters
}

// Memory is one /proc/meminfo reading, in kB.
type Memory struct {
	AppKB   uint64
	CacheKB uint64
	TotalKB uint64
}

// Point returns the stacked graph point {app, app+cache, total}.
func (m Memory) Point() MemPoint {
	return MemPoint{Val1: m.AppKB, Val2: m.AppKB + m.CacheKB, Total: m.TotalKB}
}

// CMA is the contiguous memory allocator reading. ActiveBytes comes from the
// DMA buffer report, the rest from /proc/meminfo in kB.
type CMA struct {
	ActiveBytes uint64
	ReservedKB  uint64
	TotalKB     uint64
}

// Point returns the stacked graph point {active, reserved, total} in kB.
func (c CMA) Point() MemPoint {
	return MemPoint{Val1: c.ActiveBytes / 1024, Val2: c.ReservedKB, Total: c.TotalKB}
}

// Category aggregates the DMA buffers that share a label.
type Category struct {
	Label string
	Bytes uint64
	Count uint64
}

// Hardware holds the vendor tool readings shown in the health panel.
type Hardware struct {
	Volts     string
	H264MHz   uint64
	Throttled string
}

// ThrottledLabel renders the throttle flags, with 0x0 shown as "None".
func (h Hardware) ThrottledLabel() string {
	if h.Throttled == "0x0" {
		return "None"
	}
	return h.Throttled
}

// Network is the per-tick rate of the watched interface.
type Network struct {
	Interface  string
	KbpsOut    uint64
	ErrsPerSec uint64
}

// Snapshot is every reading taken during one tick.
type Snapshot struct {
	Time       time.Time
	CPUPercent uint64
	Load       string
	TempC      float64
	Memory     Memory
	CMA        CMA
	Categories []Category
	Hardware   Hardware
	Network    Network
	Uptime     string
	Stream     []string
	Logs       []string
}

// Peaks are the high-water marks observed since startup.
type Peaks struct {
	CPU     uint64
	TempC   float64
	NetKbps uint64
}
