// Command timeuse runs the survey pipeline end to end: load the three
// extracts, build the analysis table, fit the model sequence, and write the
// artifacts (CSV, xlsx, plots, model tables).
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/invertedv/timeuse"
	"github.com/invertedv/timeuse/load"
	"github.com/invertedv/timeuse/pipeline"
	"github.com/invertedv/timeuse/report"
	"github.com/invertedv/timeuse/survey"
)

// database credentials come from the environment, never flags
type dbConfig struct {
	Host     string `env:"TIMEUSE_DB_HOST" envDefault:"localhost"`
	User     string `env:"TIMEUSE_DB_USER"`
	Password string `env:"TIMEUSE_DB_PASSWORD"`
	Name     string `env:"TIMEUSE_DB_NAME" envDefault:"timeuse"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if e := run(logger.Sugar()); e != nil {
		logger.Sugar().Fatal(e)
	}
}

func run(lg *zap.SugaredLogger) error {
	var (
		source  = flag.String("source", "csv", "input source: csv, clickhouse or postgres")
		dataDir = flag.String("data", ".", "directory holding the csv extracts")
		outDir  = flag.String("out", ".", "directory for output artifacts")

		year      = flag.Int("year", 2013, "survey year")
		earnCap   = flag.Float64("cap", pipeline.DefaultEarningsCap, "weekly earnings upper bound (rows at or above are dropped)")
		logOffset = flag.Float64("offset", pipeline.DefaultLogOffset, "offset added inside the log-hours transform")
		nullFill  = flag.Bool("nullfill", false, "keep respondents with missing demographic or diary data (NaN-filled)")

		respTable = flag.String("resp-table", "timeuse.resp", "respondent table (db sources)")
		cpsTable  = flag.String("cps-table", "timeuse.cps", "household table (db sources)")
		actTable  = flag.String("act-table", "timeuse.act", "activity table (db sources)")

		plots   = flag.Bool("plots", false, "write exploratory plots as html")
		browser = flag.String("browser", "", "also open the plots in this browser (empty means don't open)")
	)
	flag.Parse()

	cfg := pipeline.Config{
		Year:        *year,
		EarningsCap: *earnCap,
		LogOffset:   *logOffset,
		Join:        pipeline.DropUnmatched,
	}
	if *nullFill {
		cfg.Join = pipeline.NullFill
	}

	var (
		econ  []survey.Economic
		demog []survey.Demographic
		acts  []survey.Activity
		e     error
	)
	if econ, demog, acts, e = loadExtracts(*source, *dataDir, *respTable, *cpsTable, *actTable); e != nil {
		return e
	}

	lg.Infow("loaded extracts", "economic", len(econ), "demographic", len(demog), "activity", len(acts))

	var res *pipeline.Result
	if res, e = pipeline.Run(cfg, econ, demog, acts); e != nil {
		return e
	}

	lg.Infow("pipeline done",
		"rows", len(res.Rows),
		"droppedNoDemog", res.DroppedNoDemog,
		"droppedNoDiary", res.DroppedNoDiary,
		"droppedCap", res.DroppedCap)

	if len(res.Rows) == 0 {
		lg.Warnw("empty analysis table", "year", cfg.Year)
		return nil
	}

	var frame *timeuse.Frame
	if frame, e = res.Frame(); e != nil {
		return e
	}

	if e = timeuse.NewFiles().Save(filepath.Join(*outDir, "analysis.csv"), frame); e != nil {
		return e
	}

	specs, fits, eFit := report.FitSequence(res)
	if eFit != nil {
		return eFit
	}

	fmt.Println(report.ComparisonTable(specs, fits))
	fmt.Println(fits[len(fits)-1])

	step, eStep := report.StepwiseFull(res)
	if eStep != nil {
		return eStep
	}

	fmt.Println("stepwise selection:")
	fmt.Println(step)

	if e = report.SaveXLSX(filepath.Join(*outDir, "analysis.xlsx"), frame, specs, fits); e != nil {
		return e
	}

	if *plots {
		if e = savePlots(*outDir, *browser, frame, res); e != nil {
			return e
		}
	}

	lg.Infow("artifacts written", "dir", *outDir)

	return nil
}

func loadExtracts(source, dataDir, respTable, cpsTable, actTable string) ([]survey.Economic, []survey.Demographic, []survey.Activity, error) {
	switch source {
	case "csv":
		econ, e := load.Economics(filepath.Join(dataDir, "atusresp.csv"))
		if e != nil {
			return nil, nil, nil, e
		}

		demog, e := load.Demographics(filepath.Join(dataDir, "atuscps.csv"))
		if e != nil {
			return nil, nil, nil, e
		}

		acts, e := load.Activities(filepath.Join(dataDir, "atusact.csv"))
		if e != nil {
			return nil, nil, nil, e
		}

		return econ, demog, acts, nil
	case "clickhouse", "postgres":
		var creds dbConfig
		if e := env.Parse(&creds); e != nil {
			return nil, nil, nil, e
		}

		var (
			db *sql.DB
			e  error
		)
		if source == "clickhouse" {
			db, e = load.ConnectClickHouse(creds.Host, creds.User, creds.Password)
		} else {
			db, e = load.ConnectPostgres(creds.Host, creds.User, creds.Password, creds.Name)
		}
		if e != nil {
			return nil, nil, nil, e
		}
		defer func() { _ = db.Close() }()

		econ, e := load.EconomicsDB(db, respTable)
		if e != nil {
			return nil, nil, nil, e
		}

		demog, e := load.DemographicsDB(db, cpsTable)
		if e != nil {
			return nil, nil, nil, e
		}

		acts, e := load.ActivitiesDB(db, actTable)
		if e != nil {
			return nil, nil, nil, e
		}

		return econ, demog, acts, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown source %q", source)
}

func savePlots(outDir, browser string, frame *timeuse.Frame, res *pipeline.Result) error {
	hist, e := report.EarningsHistogram(frame)
	if e != nil {
		return e
	}

	bars, eBar := report.LeisureMinutesBar(res)
	if eBar != nil {
		return eBar
	}

	profile, eProf := report.AgeEarningsProfile(res)
	if eProf != nil {
		return eProf
	}

	figs := map[string]*timeuse.Plot{
		"earnings.html":    hist,
		"leisure.html":     bars,
		"ageEarnings.html": profile,
	}

	for name, p := range figs {
		fileName := filepath.Join(outDir, name)

		if browser != "" {
			if e = p.Show(browser, fileName); e != nil {
				return e
			}

			continue
		}

		if e = p.Save(fileName); e != nil {
			return e
		}
	}

	return nil
}
