/*
Copyright 2016 Iguazio.io Systems Ltd.

Licensed under the Apache License, Version 2.0 (the "License") with
an addition restriction as set forth herein. You may not use this
file except in compliance with the License. You may obtain a copy of
the License at http://www.apache.org/licenses/LICENSE-2.0.

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
implied. See the License for the specific language governing
permissions and limitations under the License.

In addition, you may not use the software for any purposes that are
illegal under applicable law, and the grant of the foregoing license
under the Apache 2.0 license is conditioned upon your compliance with
such restriction.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	logrus_stack "github.com/Gurpartap/logrus-stack"
	log "github.com/sirupsen/logrus"
	"github.com/v3io/list_blaster/listblaster"
	"github.com/v3io/list_blaster/listblaster/config"
	"github.com/v3io/list_blaster/listblaster/report"
	"github.com/v3io/list_blaster/listblaster/stats"
)

var (
	confFile         string
	resultsFile      string
	showVersion      bool
	cpuProfile       = false
	memProfile       = false
	enableLog        bool
	verbose          = false
	enableOpCounters bool
	cfg              config.TomlConfig
	logFile          *os.File
	opCounter        *stats.Counter
)

const appVersion = "1.0.0"

func init() {
	const (
		defaultConf        = "example.toml"
		usageConf          = "conf file path"
		usageVersion       = "show version"
		defaultShowVersion = false
		usageResultsFile   = "results file path"
		defaultResultsFile = "example.results"
		usageLogFile       = "enable stdout to log"
		defaultLogFile     = false
		usageVerbose       = "print debug logs"
		defaultVerbose     = false
		usageMemprofile    = "write mem profile to file"
		defaultMemprofile  = false
		usageCPUProfile    = "write cpu profile to file"
		defaultCPUProfile  = false
	)
	flag.StringVar(&confFile, "conf", defaultConf, usageConf)
	flag.StringVar(&confFile, "c", defaultConf, usageConf+" (shorthand)")
	flag.StringVar(&resultsFile, "o", defaultResultsFile, usageResultsFile+" (shorthand)")
	flag.BoolVar(&showVersion, "version", defaultShowVersion, usageVersion)
	flag.BoolVar(&cpuProfile, "p", defaultCPUProfile, usageCPUProfile)
	flag.BoolVar(&memProfile, "m", defaultMemprofile, usageMemprofile)
	flag.BoolVar(&enableLog, "d", defaultLogFile, usageLogFile)
	flag.BoolVar(&verbose, "v", defaultVerbose, usageVerbose)
	flag.BoolVar(&enableOpCounters, "enable-counters", true, "enable operation counters logging during run")
}

func parseCmdlineargs() {
	flag.Parse()
	if showVersion {
		fmt.Println(appVersion)
		os.Exit(0)
	}
}

func startCPUProfile() {
	if cpuProfile {
		log.Println("CPU Profile enabled")
		f, err := os.Create("cpuProfile")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}
}

func stopCPUProfile() {
	if cpuProfile {
		pprof.StopCPUProfile()
	}
}

func writeMemProfile() {
	if memProfile {
		log.Println("MEM Profile enabled")
		f, err := os.Create("memProfile")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pprof.WriteHeapProfile(f)
	}
}

func loadConfig() {
	var err error
	cfg, err = config.LoadConfig(confFile)
	if err != nil {
		log.Println(err)
		log.Fatalln("Failed to parse config file")
	}
	log.Printf("Running battery for counts %v, tie tolerance %dns, seed %d",
		cfg.Global.OperationCounts, cfg.Global.TieToleranceNS, cfg.Global.Seed)
}

func configureLog() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true,
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02-15:04:05"})
	if verbose {
		log.SetLevel(log.DebugLevel)
		log.AddHook(logrus_stack.StandardHook())
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if enableLog {
		filename := fmt.Sprintf("%s.log", resultsFile)
		var err error
		logFile, err = os.Create(filename)
		if err != nil {
			log.Fatalln("failed to open log file")
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, logFile))
		}
	}
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
	}
}

func enableCounters() chan struct{} {
	chDone := make(chan struct{})
	if enableOpCounters {
		go func() {
			tick := time.Tick(time.Second * 1)
			for {
				select {
				case <-chDone:
					return
				case <-tick:
					log.Info("Operations performed: ", opCounter.GetValue())
				}
			}
		}()
	}
	return chDone
}

func runBattery() ([]listblaster.ResultSet, *listblaster.Executor, error) {
	executor := listblaster.NewExecutor(cfg.Global.Seed,
		time.Duration(cfg.Global.TieToleranceNS), opCounter)
	var sets []listblaster.ResultSet
	for _, count := range cfg.Global.OperationCounts {
		log.Info("Running battery for ", count, " operations")
		set, err := executor.Run(count)
		if err != nil {
			return nil, nil, err
		}
		sets = append(sets, set)
	}
	return sets, executor, nil
}

func runLatencyProfile(executor *listblaster.Executor) {
	if !cfg.Global.LatencyProfile {
		return
	}
	count := cfg.Global.OperationCounts[len(cfg.Global.OperationCounts)-1]
	log.Info("Running read latency profile for ", count, " operations")
	arrayHist, linkedHist, err := executor.LatencyProfile(count)
	if err != nil {
		log.Errorln(err)
		return
	}
	log.Println("array read latency histogram (ns):\n", arrayHist.String())
	log.Println("linked read latency histogram (ns):\n", linkedHist.String())
}

func reportResults(sets []listblaster.ResultSet) int {
	rep := report.NewReporter(os.Stdout)
	rep.RenderEnvironment(report.NewRunID())
	for _, set := range sets {
		rep.RenderTable(set, report.Nanoseconds)
		rep.RenderTable(set, report.Milliseconds)
		rep.RenderSummary(set)
	}
	if err := report.WriteResultsFile(resultsFile, sets); err != nil {
		log.Errorln("failed to write results file: ", err)
		return 1
	}
	jsonFile := fmt.Sprintf("%s.json", resultsFile)
	if err := report.WriteJSON(jsonFile, sets); err != nil {
		log.Errorln("failed to write json results: ", err)
		return 1
	}
	log.Println("Results written to ", resultsFile, " and ", jsonFile)
	return 0
}

func exit(errCode int) {
	if errCode != 0 {
		log.Errorln("Benchmark failed with error")
		os.Exit(errCode)
	}
	log.Println("Benchmark completed successfully")
}

func main() {
	parseCmdlineargs()
	configureLog()
	log.Println("Started list_blaster version:", appVersion)
	loadConfig()

	defer closeLogFile()
	defer stopCPUProfile()
	defer writeMemProfile()

	startCPUProfile()
	opCounter = stats.NewCounter()
	chDone := enableCounters()
	sets, executor, err := runBattery()
	close(chDone)
	if err != nil {
		log.Errorln(err)
		exit(1)
	}
	runLatencyProfile(executor)
	errCode := reportResults(sets)
	exit(errCode)
}
