package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	verbose     bool
	lexiconPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "biascope",
	Short: "Biascope - deterministic media bias scoring",
	Long: `Biascope assigns a directional bias score in [-1.000, +1.000] to a
piece of text by combining four independent scoring methodologies:

  harvard    position/attribution weighting        (40%)
  columbia   partisan phrase frequency             (35%)
  allsides   multi-dimensional bias indicators     (20%)
  sentiment  polarity/subjectivity proxy            (5%)

Scoring is dictionary-driven and fully deterministic: the same text
always produces the same score, and every component score is explained
by transparent detail data. Biascope measures framing, not truth.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("biascope v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.biascope/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon file overriding the embedded dictionaries")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("lexicon.path", rootCmd.PersistentFlags().Lookup("lexicon"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.biascope")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match BIASCOPE_*
	viper.SetEnvPrefix("BIASCOPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
