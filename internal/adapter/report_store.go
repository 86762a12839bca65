package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/piecewise/internal/model"
)

const (
	reportFile        = "report.yaml"
	shardReportPrefix = "shard-"
	reportExt         = ".yaml"
)

// ErrNoReports is returned when a reports directory holds no reports.
var ErrNoReports = errors.New("no reports found")

// ErrMixedShards is returned when shard reports in one directory were
// written with different shard totals.
var ErrMixedShards = errors.New("shard reports have different totals")

// ReportStore persists and retrieves suite reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) error
	LoadReport(dir m.Path) (m.Report, error)
	CleanReports(dir m.Path) error
}

// LocalReportStore writes one YAML file per run, or one per shard for
// sharded runs, into a reports directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report into dir. An unsharded report replaces every
// report already in dir. A shard report replaces the same shard and drops
// the unsharded report and shards written with a different total.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) error {
	if dir == "" {
		return fmt.Errorf("reports path is empty")
	}

	name, err := reportFileName(report.Shard)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	if err := rs.removeStale(dir, report.Shard); err != nil {
		return err
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(string(dir), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	glog.V(1).Infof("wrote report %s (%d results)", path, len(report.Results))

	return nil
}

// LoadReport reads every report in dir and merges them. Shard results are
// interleaved by shard index, which restores the order the cases had
// before sharding; the earliest start time wins. Coverage is dropped
// because it must be recomputed over the merge.
func (rs *LocalReportStore) LoadReport(dir m.Path) (m.Report, error) {
	files, err := rs.reportFiles(dir)
	if err != nil {
		return m.Report{}, err
	}

	if len(files) == 0 {
		return m.Report{}, fmt.Errorf("%s: %w", dir, ErrNoReports)
	}

	if len(files) == 1 {
		return readReport(files[0].path)
	}

	var merged m.Report

	shards := make([]string, 0, len(files))
	results := make([][]m.Result, 0, len(files))

	for _, file := range files {
		if file.total != files[0].total {
			return m.Report{}, fmt.Errorf("%s: %d and %d: %w", dir, files[0].total, file.total, ErrMixedShards)
		}

		report, err := readReport(file.path)
		if err != nil {
			return m.Report{}, err
		}

		if merged.Started.IsZero() || (!report.Started.IsZero() && report.Started.Before(merged.Started)) {
			merged.Started = report.Started
		}

		results = append(results, report.Results)
		shards = append(shards, report.Shard)
	}

	merged.Results = interleave(results)
	merged.Shard = strings.Join(shards, ",")

	return merged, nil
}

// interleave undoes round-robin sharding: shard k holds cases k, k+n, ...
func interleave(shards [][]m.Result) []m.Result {
	var merged []m.Result

	for i := 0; ; i++ {
		added := false

		for _, results := range shards {
			if i < len(results) {
				merged = append(merged, results[i])
				added = true
			}
		}

		if !added {
			return merged
		}
	}
}

// CleanReports removes every report file from dir. A missing dir is not
// an error.
func (rs *LocalReportStore) CleanReports(dir m.Path) error {
	files, err := rs.reportFiles(dir)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := removeReport(file.path); err != nil {
			return err
		}
	}

	return nil
}

// removeStale deletes reports that must not be merged with a new report
// for shard.
func (rs *LocalReportStore) removeStale(dir m.Path, shard string) error {
	if shard == "" {
		return rs.CleanReports(dir)
	}

	_, total, err := parseShard(shard)
	if err != nil {
		return err
	}

	files, err := rs.reportFiles(dir)
	if err != nil {
		return err
	}

	for _, file := range files {
		if file.total == total {
			continue
		}

		glog.V(1).Infof("removing stale report %s", file.path)

		if err := removeReport(file.path); err != nil {
			return err
		}
	}

	return nil
}

func removeReport(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove report %s: %w", path, err)
	}

	return nil
}

// reportFileInfo is a report on disk. The unsharded report has index 0 and
// total 1.
type reportFileInfo struct {
	path  string
	index int
	total int
}

// reportFiles lists the reports in dir ordered by shard total, then by
// shard index.
func (rs *LocalReportStore) reportFiles(dir m.Path) ([]reportFileInfo, error) {
	if dir == "" {
		return nil, fmt.Errorf("reports path is empty")
	}

	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var files []reportFileInfo

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(string(dir), name)

		if name == reportFile {
			files = append(files, reportFileInfo{path: path, index: 0, total: 1})
			continue
		}

		if index, total, ok := parseShardFileName(name); ok {
			files = append(files, reportFileInfo{path: path, index: index, total: total})
		}
	}

	slices.SortFunc(files, func(a, b reportFileInfo) int {
		if a.total != b.total {
			return a.total - b.total
		}

		return a.index - b.index
	})

	return files, nil
}

func readReport(path string) (m.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}

// reportFileName maps "INDEX/TOTAL" to "shard-INDEX-of-TOTAL.yaml".
func reportFileName(shard string) (string, error) {
	if shard == "" {
		return reportFile, nil
	}

	index, total, err := parseShard(shard)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%d-of-%d%s", shardReportPrefix, index, total, reportExt), nil
}

// parseShard parses "INDEX/TOTAL" with 0 <= INDEX < TOTAL.
func parseShard(shard string) (int, int, error) {
	indexText, totalText, found := strings.Cut(shard, "/")
	if !found {
		return 0, 0, fmt.Errorf("invalid shard %q: want INDEX/TOTAL", shard)
	}

	index, total, ok := parseShardNumbers(indexText, totalText)
	if !ok {
		return 0, 0, fmt.Errorf("invalid shard %q: want INDEX/TOTAL with 0 <= INDEX < TOTAL", shard)
	}

	return index, total, nil
}

func parseShardFileName(name string) (int, int, bool) {
	rest, ok := strings.CutPrefix(name, shardReportPrefix)
	if !ok {
		return 0, 0, false
	}

	rest, ok = strings.CutSuffix(rest, reportExt)
	if !ok {
		return 0, 0, false
	}

	indexText, totalText, ok := strings.Cut(rest, "-of-")
	if !ok {
		return 0, 0, false
	}

	return parseShardNumbers(indexText, totalText)
}

func parseShardNumbers(indexText, totalText string) (int, int, bool) {
	index, err := strconv.Atoi(indexText)
	if err != nil {
		return 0, 0, false
	}

	total, err := strconv.Atoi(totalText)
	if err != nil {
		return 0, 0, false
	}

	if total <= 0 || index < 0 || index >= total {
		return 0, 0, false
	}

	return index, total, true
}
