package basic

import (
	"fmt"
	"github.com/tklauser/go-sysconf"
	"os"
	"strconv"
	"strings"
	"time"
)

func resetStatistics(prog *Program) {

	prog.stats.numStatements = 0
	prog.stats.elapsed = time.Now()
	prog.stats.utime, prog.stats.stime, _ = getCPUInfo()
}

func printStatistics(prog *Program) {

	if !prog.printStats {
		return
	}

	st := &prog.stats

	prog.con.Println()

	elapsed := time.Since(st.elapsed)
	if utime, stime, err := getCPUInfo(); err == nil {
		prog.con.Printf("CPU Usage: elapsed = %s / user = %s / system = %s\n",
			formatCPUTime(int64(elapsed.Seconds())),
			formatCPUTime(utime-st.utime), formatCPUTime(stime-st.stime))
	} else {
		prog.con.Printf("CPU Usage: elapsed = %s\n",
			formatCPUTime(int64(elapsed.Seconds())))
	}

	prog.con.Printf("%d %s executed\n", st.numStatements,
		pluralize("statement", st.numStatements))
}

func formatCPUTime(t int64) string {

	var h, m int64

	if t >= 3600 {
		h = t / 3600
		t = t % 3600
	}

	if t >= 60 {
		m = t / 60
		t = t % 60
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}

//
// User and system CPU seconds for this process.  This only works
// where there is a /proc; elsewhere the caller just goes without
//

func getCPUInfo() (int64, int64, error) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, 0, err
	}

	if clktck <= 0 {
		return 0, 0, fmt.Errorf("bad clock tick %d", clktck)
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		return 0, 0, err
	}

	//
	// The command name (field 2) is in parens and may contain blanks,
	// so start counting after the closing paren
	//

	s := string(contents)
	if idx := strings.LastIndexByte(s, ')'); idx >= 0 {
		s = s[idx+1:]
	}

	fields := strings.Fields(s)
	if len(fields) < 13 {
		return 0, 0, fmt.Errorf("short /proc/self/stat")
	}

	utime, err := strconv.ParseInt(fields[11], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	stime, err := strconv.ParseInt(fields[12], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return utime / clktck, stime / clktck, nil
}
