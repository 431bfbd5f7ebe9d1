package monitor

import (
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/pidash/internal/config"
	"github.com/rileyhilliard/pidash/internal/logger"
	"github.com/rileyhilliard/pidash/internal/source"
)

// Sampler reads every metric once per tick. It owns the rate state and the
// peak trackers, so it must be driven from a single goroutine.
type Sampler struct {
	src   source.Source
	cfg   *config.Config
	log   logger.Logger
	now   func() time.Time
	rates RateState

	peakCPU  Peak[uint64]
	peakTemp Peak[float64]
	peakNet  Peak[uint64]
}

// NewSampler creates a sampler over src. A nil cfg uses the defaults and a
// nil log uses logger.Default().
func NewSampler(src source.Source, cfg *config.Config, log logger.Logger) *Sampler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Default()
	}
	return &Sampler{src: src, cfg: cfg, log: log, now: time.Now}
}

// Rates returns a copy of the stored counters.
func (s *Sampler) Rates() RateState {
	return s.rates
}

// Peaks returns the high-water marks seen so far.
func (s *Sampler) Peaks() Peaks {
	return Peaks{
		CPU:     s.peakCPU.Value(),
		TempC:   s.peakTemp.Value(),
		NetKbps: s.peakNet.Value(),
	}
}

// Sample takes one reading of every metric. interval is the sampling period
// in effect and logLines the number of trailing log lines to fetch. Source
// failures degrade the affected value to zero; Sample never fails.
func (s *Sampler) Sample(interval time.Duration, logLines int) Snapshot {
	srcs := s.cfg.Sources
	meminfo := ParseMeminfo(s.src.ReadFile(srcs.ProcMeminfo))
	active, cats := s.sampleDMA()

	return Snapshot{
		Time:       s.now(),
		CPUPercent: s.sampleCPU(),
		Load:       strings.TrimSpace(s.src.ReadFile(srcs.ProcLoadavg)),
		TempC:      s.sampleTemp(),
		Memory:     MemoryFromMeminfo(meminfo),
		CMA:        CMAFromMeminfo(meminfo, active),
		Categories: cats,
		Hardware:   s.sampleHardware(),
		Network:    s.sampleNetwork(interval),
		Uptime:     strings.TrimPrefix(s.src.Run("uptime", "-p"), "up "),
		Stream:     s.sampleStream(),
		Logs:       s.sampleLogs(logLines),
	}
}

func (s *Sampler) sampleCPU() uint64 {
	cur, ok := ParseCPUCounters(s.src.ReadFile(s.cfg.Sources.ProcStat))
	if !ok {
		s.log.Debug("no usable cpu line in %s", s.cfg.Sources.ProcStat)
		return 0
	}
	pct := Utilization(s.rates.CPU, cur)
	s.rates.CPU = cur
	s.peakCPU.Observe(pct)
	return pct
}

func (s *Sampler) sampleTemp() float64 {
	srcs := s.cfg.Sources
	temp, ok := ParseVcgencmdTemp(s.src.Run(srcs.Vcgencmd, "measure_temp"))
	if !ok {
		temp, ok = ParseThermalZone(s.src.ReadFile(srcs.ThermalZone))
	}
	if !ok {
		s.log.Debug("temperature unavailable")
		return 0
	}
	s.peakTemp.Observe(temp)
	return temp
}

func (s *Sampler) sampleNetwork(interval time.Duration) Network {
	cur, name, ok := ParseNetDev(s.src.ReadFile(s.cfg.Sources.ProcNetDev), s.cfg.Sources.Interfaces)
	if !ok {
		s.log.Debug("no watched interface in %s", s.cfg.Sources.ProcNetDev)
		s.rates.Net = NetCounters{}
		return Network{}
	}

	prev := s.rates.Net
	cur.Primed = true
	s.rates.Net = cur
	if !prev.Primed {
		return Network{Interface: name}
	}

	kbps := Kbps(SaturatingDelta(cur.Tx, prev.Tx), interval)
	s.peakNet.Observe(kbps)
	return Network{
		Interface:  name,
		KbpsOut:    kbps,
		ErrsPerSec: PerSecond(SaturatingDelta(cur.Errs, prev.Errs), interval),
	}
}

func (s *Sampler) sampleDMA() (uint64, []Category) {
	cmd := s.cfg.DMA.Command
	if len(cmd) == 0 {
		return 0, nil
	}
	return ParseBufinfo(s.src.Run(cmd[0], cmd[1:]...), s.cfg.DMA)
}

func (s *Sampler) sampleHardware() Hardware {
	vc := s.cfg.Sources.Vcgencmd
	return Hardware{
		Volts:     StripField(s.src.Run(vc, "measure_volts", "core"), "volt="),
		H264MHz:   ParseClockMHz(s.src.Run(vc, "measure_clock", "h264")),
		Throttled: StripField(s.src.Run(vc, "get_throttled"), "throttled="),
	}
}

func (s *Sampler) sampleStream() []string {
	procs := s.cfg.Sources.StreamProcesses
	if len(procs) == 0 {
		return nil
	}
	return strings.Fields(s.src.Run("ps", "-C", strings.Join(procs, ","), "-o", "comm="))
}

func (s *Sampler) sampleLogs(n int) []string {
	if s.cfg.Sources.JournalUnit == "" || n < 1 {
		return nil
	}
	out := s.src.Run("journalctl", "-u", s.cfg.Sources.JournalUnit, "-n", strconv.Itoa(n), "--no-pager")
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
