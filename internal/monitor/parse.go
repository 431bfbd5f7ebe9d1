package monitor

import (
	"bufio"
	"sort"
	"strconv"
	"strings"

	"github.com/rileyhilliard/pidash/internal/config"
)

// parseUint parses a decimal counter. Anything unparsable reads as 0.
func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCPUCounters reads the aggregate cpu line of /proc/stat.
// Total is the sum of fields 2-8, Idle is field 5. ok is false when the line
// is missing or has too few fields to carry an idle counter.
func ParseCPUCounters(procStat string) (CPUCounters, bool) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) <= 4 {
			return CPUCounters{}, false
		}

		var c CPUCounters
		for i := 1; i <= 7 && i < len(fields); i++ {
			c.Total += parseUint(fields[i])
		}
		c.Idle = parseUint(fields[4])
		return c, true
	}
	return CPUCounters{}, false
}

// ParseMeminfo reads /proc/meminfo into a key to kB table.
// Values that fail to parse are stored as 0.
func ParseMeminfo(text string) map[string]uint64 {
	table := make(map[string]uint64)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		table[strings.TrimSuffix(fields[0], ":")] = parseUint(fields[1])
	}
	return table
}

// lookupOr returns table[key], or fallback when the key is absent.
func lookupOr(table map[string]uint64, key string, fallback uint64) uint64 {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// MemoryFromMeminfo derives the app/cache/total split.
// A missing MemTotal reads as 1 so that graph ceilings stay positive.
func MemoryFromMeminfo(table map[string]uint64) Memory {
	total := lookupOr(table, "MemTotal", 1)
	free := table["MemFree"]
	cache := table["Cached"] + table["Buffers"]
	return Memory{
		AppKB:   SaturatingDelta(SaturatingDelta(total, free), cache),
		CacheKB: cache,
		TotalKB: total,
	}
}

// CMAFromMeminfo derives the reserved and total CMA figures.
func CMAFromMeminfo(table map[string]uint64, activeBytes uint64) CMA {
	total := lookupOr(table, "CmaTotal", 1)
	return CMA{
		ActiveBytes: activeBytes,
		ReservedKB:  SaturatingDelta(total, table["CmaFree"]),
		TotalKB:     total,
	}
}

// ParseNetDev finds the first row of /proc/net/dev whose interface is in
// ifaces and returns its transmit byte and error counters. Rows with too few
// columns are skipped.
func ParseNetDev(text string, ifaces []string) (NetCounters, string, bool) {
	watched := make(map[string]bool, len(ifaces))
	for _, name := range ifaces {
		watched[name] = true
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		name, rest, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if !watched[name] {
			continue
		}

		cols := strings.Fields(rest)
		if len(cols) <= 9 {
			continue
		}
		return NetCounters{
			Tx:   parseUint(cols[8]),
			Errs: parseUint(cols[2]) + parseUint(cols[3]),
		}, name, true
	}
	return NetCounters{}, "", false
}

// ParseBufSize parses a DMA buffer size. A 0x prefix always means hex,
// otherwise radix applies.
func ParseBufSize(s string, radix int) uint64 {
	v, _ := parseBufSize(s, radix)
	return v
}

func parseBufSize(s string, radix int) (uint64, bool) {
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		s, radix = hex, 16
	}
	v, err := strconv.ParseUint(s, radix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Categorize returns the label of the first rule whose pattern occurs in
// line, or fallback when none matches.
func Categorize(line string, rules []config.CategoryRule, fallback string) string {
	for _, rule := range rules {
		if rule.Match != "" && strings.Contains(line, rule.Match) {
			return rule.Label
		}
	}
	return fallback
}

// ParseBufinfo scans a DMA buffer report. It returns the active byte count
// from the Total row and per-category aggregates sorted by size, largest
// first.
func ParseBufinfo(text string, dma config.DMAConfig) (uint64, []Category) {
	var active uint64
	byLabel := make(map[string]*Category)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)

		if strings.Contains(line, "Total") {
			if len(fields) >= 4 {
				active = parseUint(fields[3])
			}
			continue
		}
		if len(fields) < 6 || strings.HasPrefix(line, "size") {
			continue
		}

		size, ok := parseBufSize(fields[0], dma.SizeRadix)
		if !ok {
			continue
		}
		label := Categorize(line, dma.Categories, dma.DefaultCategory)
		cat, ok := byLabel[label]
		if !ok {
			cat = &Category{Label: label}
			byLabel[label] = cat
		}
		cat.Bytes += size
		cat.Count++
	}

	cats := make([]Category, 0, len(byLabel))
	for _, c := range byLabel {
		cats = append(cats, *c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Bytes != cats[j].Bytes {
			return cats[i].Bytes > cats[j].Bytes
		}
		return cats[i].Label < cats[j].Label
	})
	return active, cats
}

// ParseVcgencmdTemp parses "temp=48.3'C".
func ParseVcgencmdTemp(out string) (float64, bool) {
	s := strings.TrimSpace(out)
	s = strings.TrimPrefix(s, "temp=")
	s = strings.TrimSuffix(s, "'C")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseThermalZone parses a sysfs thermal zone reading in millidegrees.
func ParseThermalZone(text string) (float64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(v) / 1000, true
}

// ParseClockMHz parses "frequency(28)=550000000" into MHz.
func ParseClockMHz(out string) uint64 {
	s := strings.TrimSpace(out)
	if i := strings.LastIndex(s, "="); i >= 0 {
		s = s[i+1:]
	}
	return parseUint(s) / 1_000_000
}

// StripField trims a vendor "key=value" reply down to the value.
func StripField(out, prefix string) string {
	return strings.TrimPrefix(strings.TrimSpace(out), prefix)
}
