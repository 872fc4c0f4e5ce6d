package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avinashsubr/Resolution-Inference-FOL/engine"
)

func runE(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	queries, sentences, err := readBatch(inputPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inputPath)
	}

	e := engine.New()
	told, failed := 0, 0
	for _, s := range sentences {
		if err := e.Tell(s); err != nil {
			failed++
			log.WithFields(logrus.Fields{"sentence": s, "err": err}).Warn("skipping unusable KB sentence")
			continue
		}
		told++
		log.WithField("sentence", s).Debug("told")
	}
	log.WithFields(logrus.Fields{"told": told, "skipped": failed}).Info("knowledge base loaded")

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outputPath)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, q := range queries {
		verdict, err := e.Ask(q)
		if err != nil {
			// A malformed query still owes the output file a line (spec's
			// one-line-per-query guarantee): treat it as unprovable.
			log.WithFields(logrus.Fields{"query": q, "err": err}).Warn("query failed to parse, answering FALSE")
			verdict = false
		} else {
			log.WithFields(logrus.Fields{"query": q, "result": verdict}).Debug("answered")
		}
		if verdict {
			w.WriteString("TRUE\n")
		} else {
			w.WriteString("FALSE\n")
		}
	}
	return nil
}

// readBatch reads the batch file format: a query count, that many query
// lines, a KB sentence count, then that many KB sentence lines.
func readBatch(path string) (queries, sentences []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	readInt := func() (int, error) {
		if !sc.Scan() {
			return 0, errors.New("unexpected end of file")
		}
		return strconv.Atoi(strings.TrimSpace(sc.Text()))
	}
	readLines := func(n int) ([]string, error) {
		lines := make([]string, 0, n)
		for i := 0; i < n; i++ {
			if !sc.Scan() {
				return nil, errors.New("unexpected end of file")
			}
			lines = append(lines, strings.TrimSpace(sc.Text()))
		}
		return lines, nil
	}

	nQueries, err := readInt()
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading query count")
	}
	queries, err = readLines(nQueries)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading queries")
	}

	nSentences, err := readInt()
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading KB sentence count")
	}
	sentences, err = readLines(nSentences)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading KB sentences")
	}

	return queries, sentences, sc.Err()
}
