package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/alexflint/go-arg"
	"github.com/diku-irlab/A66/eval"
	"github.com/diku-irlab/A66/output"
	"github.com/diku-irlab/A66/topics"
	"github.com/go-errors/errors"
	"github.com/magiconair/properties"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	name    = "credeval"
	version = "16.Oct.2026"
)

type args struct {
	Evaluation       []string `help:"Which evaluation measures to use" arg:"-e,separate"`
	Mu               *float64 `help:"Penalty for relevance misordering (default 1)" arg:"-m"`
	Nu               *float64 `help:"Penalty for credibility misordering (default 1)" arg:"-n"`
	Lambda           *float64 `help:"Relevance/credibility trade-off in [0,1] (default 0.5)" arg:"-l"`
	Concurrency      *int     `help:"Number of topics to evaluate at once (default number of CPUs)" arg:"-j"`
	Config           string   `help:"Properties file supplying mu, nu, lambda and concurrency" arg:"-c"`
	Format           string   `help:"Output format (json/csv)" arg:"-f"`
	Summary          bool     `help:"Only output summary information" arg:"-s"`
	Clamp            bool     `help:"Clamp normalised rank errors (NLRE, NGRE and their aggregates) to [0,1]"`
	EvaluationOutput string   `help:"Name of results file" arg:"-o"`
	Progress         bool     `help:"Show a progress bar" arg:"-p"`
	RunFile          string   `help:"Path to run file" arg:"required,positional"`
	RelevanceQrels   string   `help:"Path to relevance qrels file" arg:"required,positional"`
	CredibilityQrels string   `help:"Path to credibility qrels file" arg:"required,positional"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
# %s
evaluates rankings for relevance and credibility`, name, version)
}

// config holds the effective parameters: defaults, overridden by the
// properties file, overridden by flags.
type config struct {
	Mu, Nu, Lambda float64
	Concurrency    int
}

func loadConfig(a args) (config, error) {
	c := config{Mu: 1, Nu: 1, Lambda: 0.5, Concurrency: runtime.NumCPU()}
	if len(a.Config) > 0 {
		p, err := properties.LoadFile(a.Config, properties.UTF8)
		if err != nil {
			return c, err
		}
		c.Mu = p.GetFloat64("mu", c.Mu)
		c.Nu = p.GetFloat64("nu", c.Nu)
		c.Lambda = p.GetFloat64("lambda", c.Lambda)
		c.Concurrency = p.GetInt("concurrency", c.Concurrency)
	}
	if a.Mu != nil {
		c.Mu = *a.Mu
	}
	if a.Nu != nil {
		c.Nu = *a.Nu
	}
	if a.Lambda != nil {
		c.Lambda = *a.Lambda
	}
	if a.Concurrency != nil {
		c.Concurrency = *a.Concurrency
	}
	return c, nil
}

func fatal(err error) {
	log.Fatalln(errors.Wrap(err, 1).ErrorStack())
}

func readTopics(a args) ([]eval.Topic, error) {
	run, err := os.Open(a.RunFile)
	if err != nil {
		return nil, err
	}
	defer run.Close()
	rel, err := os.Open(a.RelevanceQrels)
	if err != nil {
		return nil, err
	}
	defer rel.Close()
	cred, err := os.Open(a.CredibilityQrels)
	if err != nil {
		return nil, err
	}
	defer cred.Close()
	return topics.Load(run, rel, cred)
}

func main() {
	var args args
	arg.MustParse(&args)

	if len(args.Evaluation) == 0 {
		log.Fatalln("nothing to do, quitting")
	}

	c, err := loadConfig(args)
	if err != nil {
		fatal(err)
	}

	constants, err := eval.NewConstantCache(1024)
	if err != nil {
		fatal(err)
	}
	evaluators, err := selectMeasures(args.Evaluation, parameters{
		Mu:        c.Mu,
		Nu:        c.Nu,
		Lambda:    c.Lambda,
		Constants: constants,
		Clamp:     args.Clamp,
	})
	if err != nil {
		fatal(err)
	}

	ts, err := readTopics(args)
	if err != nil {
		fatal(err)
	}
	log.Printf("loaded %d topics\n", len(ts))

	var progress func(string)
	if args.Progress {
		bar := pb.New(len(ts))
		bar.Output = os.Stderr
		bar.Start()
		defer bar.Finish()
		progress = func(string) {
			bar.Increment()
		}
	}

	evaluation, err := eval.EvaluateWithProgress(evaluators, ts, c.Concurrency, progress)
	if err != nil {
		fatal(err)
	}

	formatter := output.JsonEvaluationFormatter
	switch {
	case args.Summary:
		formatter = output.SummaryFormatter
	case args.Format == "csv":
		formatter = output.CsvEvaluationFormatter
	case len(args.Format) > 0 && args.Format != "json":
		fatal(fmt.Errorf("unrecognised format %s", args.Format))
	}

	v, err := formatter(evaluation)
	if err != nil {
		fatal(err)
	}

	if len(args.EvaluationOutput) > 0 {
		err = os.WriteFile(args.EvaluationOutput, []byte(v), 0664)
	} else {
		_, err = os.Stdout.WriteString(v)
	}
	if err != nil {
		fatal(err)
	}
}
