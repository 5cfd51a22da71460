package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mygrambench "github.com/mygramdb/mygrambench"
	"github.com/mygramdb/mygrambench/client/mygram"
	"github.com/mygramdb/mygrambench/client/mysql"
	"github.com/mygramdb/mygrambench/internal/logging"
	"github.com/mygramdb/mygrambench/query"
)

var (
	target      string
	table       string
	column      string
	words       string
	queryType   string
	limit       int
	offset      int
	concurrency int
	iterations  int
	timeout     time.Duration

	mysqlHost     string
	mysqlPort     int
	mysqlUser     string
	mysqlPassword string
	mysqlDatabase string
	mygramHost    string
	mygramPort    int

	jsonOutput bool
	verbose    bool
)

// rootCmd is the only command: run the benchmark and print results.
var rootCmd = &cobra.Command{
	Use:   "mygrambench",
	Short: "Benchmark MygramDB against MySQL FULLTEXT search",
	Long: `mygrambench issues the same logical search workload to a
MygramDB server and a MySQL FULLTEXT index and reports
latency and throughput statistics for each.

Connection settings fall back to environment variables
(MYGRAMDB_HOST, MYGRAMDB_PORT, MYSQL_HOST, MYSQL_PORT,
MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE), which may
also be supplied through a .env file in the working
directory. Flags always win over the environment.

Query failures do not make the run exit non-zero; they
are counted and the first few diagnostics are shown.

Examples:

  $ mygrambench --table articles --words hello
  $ mygrambench --target mysql --table articles --words "hello,world" --concurrency 100
  $ mygrambench --table articles --words hello --query-type count --iterations 50`,
	Run: runBenchmark,
}

// Execute runs the root command. It is called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&target, "target", "both", "Target to benchmark: mygramdb, mysql or both")
	rootCmd.Flags().StringVar(&table, "table", "", "Table name")
	rootCmd.Flags().StringVar(&column, "column", "name", "FULLTEXT column (MySQL only)")
	rootCmd.Flags().StringVar(&words, "words", "", "Comma-separated search words")
	rootCmd.Flags().StringVar(&queryType, "query-type", "search", "Query type: search or count")
	rootCmd.Flags().IntVar(&limit, "limit", 100, "LIMIT for search queries")
	rootCmd.Flags().IntVar(&offset, "offset", 0, "OFFSET for search queries (pagination)")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 1, "Number of concurrent workers")
	rootCmd.Flags().IntVar(&iterations, "iterations", 5, "Iterations per query")
	rootCmd.Flags().DurationVar(&timeout, "timeout", mygrambench.DefaultTimeout, "Per-query timeout")

	rootCmd.Flags().StringVar(&mysqlHost, "mysql-host", "", "MySQL host (default $MYSQL_HOST or 127.0.0.1)")
	rootCmd.Flags().IntVar(&mysqlPort, "mysql-port", 0, "MySQL port (default $MYSQL_PORT or 3306)")
	rootCmd.Flags().StringVar(&mysqlUser, "mysql-user", "", "MySQL user (default $MYSQL_USER or root)")
	rootCmd.Flags().StringVar(&mysqlPassword, "mysql-password", "", "MySQL password (default $MYSQL_PASSWORD)")
	rootCmd.Flags().StringVar(&mysqlDatabase, "mysql-database", "", "MySQL database (default $MYSQL_DATABASE or test)")
	rootCmd.Flags().StringVar(&mygramHost, "mygramdb-host", "", "MygramDB host (default $MYGRAMDB_HOST or 127.0.0.1)")
	rootCmd.Flags().IntVar(&mygramPort, "mygramdb-port", 0, "MygramDB port (default $MYGRAMDB_PORT or 11016)")

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit per-target results as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.MarkFlagRequired("table")
	rootCmd.MarkFlagRequired("words")
}

func runBenchmark(cmd *cobra.Command, args []string) {
	logger := logging.New(verbose)
	defer logger.Sync()

	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded connection defaults from .env")
	}

	switch target {
	case "mygramdb", "mysql", "both":
	default:
		logger.Fatalf("invalid --target %q (want mygramdb, mysql or both)", target)
	}
	typ := query.Type(queryType)
	if !typ.Valid() {
		logger.Fatalf("invalid --query-type %q (want search or count)", queryType)
	}

	searchWords := splitWords(words)
	if len(searchWords) == 0 {
		logger.Fatal("at least one search word is required")
	}

	mygramCfg := mygram.Client{
		Host: fallbackString(mygramHost, "MYGRAMDB_HOST", "127.0.0.1"),
		Port: fallbackInt(mygramPort, "MYGRAMDB_PORT", mygram.DefaultPort),
	}
	mysqlCfg := mysql.Config{
		Host:     fallbackString(mysqlHost, "MYSQL_HOST", "127.0.0.1"),
		Port:     fallbackInt(mysqlPort, "MYSQL_PORT", mysql.DefaultPort),
		User:     fallbackString(mysqlUser, "MYSQL_USER", "root"),
		Password: fallbackString(mysqlPassword, "MYSQL_PASSWORD", ""),
		Database: fallbackString(mysqlDatabase, "MYSQL_DATABASE", "test"),
	}

	printBanner(searchWords)

	if target == "mygramdb" || target == "both" {
		queries := query.BuildMygram(table, searchWords, typ, limit, offset)
		runner := mygrambench.Runner{
			Client:      mygramCfg,
			Concurrency: concurrency,
			Iterations:  iterations,
			Timeout:     timeout,
			Logger:      logger,
		}
		summary := runner.Run(queries)
		printSummary("MygramDB Benchmark", mygramCfg.Addr(), summary)
	}

	if target == "mysql" || target == "both" {
		client, err := mysql.New(mysqlCfg)
		if err != nil {
			printUnavailable("MySQL Benchmark", err)
		} else {
			queries := query.BuildMySQL(table, column, searchWords, typ, limit, offset)
			runner := mygrambench.Runner{
				Client:      client,
				Concurrency: concurrency,
				Iterations:  iterations,
				Timeout:     timeout,
				Logger:      logger,
			}
			summary := runner.Run(queries)
			printSummary("MySQL Benchmark", client.Addr(), summary)
		}
	}
}

// splitWords splits the comma-separated word list, trimming whitespace
// and dropping empty entries.
func splitWords(s string) []string {
	var out []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
