// Command strftimecli runs a batch of strftime/strptime jobs described in a
// YAML file and prints one result line per job. It exists as a standalone
// way to exercise the engine outside of a SQL session, for smoke-testing a
// format string or a corpus of legacy timestamps.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/moneytech/duckdb-strftime/calendar"
	"github.com/moneytech/duckdb-strftime/strftime"
)

// job is one line of work read out of the batch file. Direction selects
// whether Value is a timestamp to format or a string to parse; Value holds
// either the timestamp fields to format (for "format") or the raw string
// (for "parse").
type job struct {
	Direction string      `yaml:"direction"`
	Format    string      `yaml:"format"`
	Value     interface{} `yaml:"value"`
}

// batchFile is the top-level shape of a strftimecli input file.
type batchFile struct {
	Jobs []job `yaml:"jobs"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: strftimecli <batch.yaml>")
		os.Exit(2)
	}

	log := logrus.New()

	data, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		log.WithError(err).Fatal("could not read batch file")
	}

	var batch batchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		log.WithError(err).Fatal("could not parse batch file")
	}

	exitCode := 0
	for i, j := range batch.Jobs {
		if err := runJob(j); err != nil {
			log.WithFields(logrus.Fields{
				"job":       i,
				"direction": j.Direction,
				"format":    j.Format,
			}).WithError(err).Error("job failed")
			exitCode = 1
			continue
		}
	}
	os.Exit(exitCode)
}

func runJob(j job) error {
	switch j.Direction {
	case "format":
		return runFormat(j)
	case "parse":
		return runParse(j)
	default:
		return fmt.Errorf("unknown direction %q, expected \"format\" or \"parse\"", j.Direction)
	}
}

func runFormat(j job) error {
	program, err := strftime.Compile(j.Format, strftime.Format)
	if err != nil {
		return err
	}

	fields, ok := j.Value.(map[interface{}]interface{})
	if !ok {
		return fmt.Errorf("format job value must be a mapping of calendar fields")
	}

	date := calendar.DateFromYMD(
		cast.ToInt(fields["year"]),
		cast.ToInt(fields["month"]),
		cast.ToInt(fields["day"]),
	)
	clock := calendar.TimeFromHMSU(
		cast.ToInt(fields["hour"]),
		cast.ToInt(fields["minute"]),
		cast.ToInt(fields["second"]),
		cast.ToInt(fields["micro"]),
	)
	ts := calendar.TimestampFrom(date, clock)

	fmt.Println(strftime.Format(program, ts))
	return nil
}

func runParse(j job) error {
	program, err := strftime.Compile(j.Format, strftime.Parse)
	if err != nil {
		return err
	}

	input := cast.ToString(j.Value)
	tup, _, err := strftime.Parse(program, input)
	if err != nil {
		return err
	}

	fmt.Printf("%04d-%02d-%02d %02d:%02d:%02d.%06d\n",
		tup.Year, tup.Month, tup.Day, tup.Hour, tup.Minute, tup.Second, tup.Micro)
	return nil
}
