package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/phoneline/voicemenu/internal/cloudwriter"
	"github.com/phoneline/voicemenu/internal/factories"
	"github.com/phoneline/voicemenu/internal/menu"
	"github.com/phoneline/voicemenu/internal/models"
	"github.com/phoneline/voicemenu/internal/output"
	"github.com/phoneline/voicemenu/internal/profile"
	"github.com/phoneline/voicemenu/internal/source"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "voicemenu",
	Short: "Normalizes restaurant menus and hours for voice agents",
	Long:  `voicemenu fetches a restaurant's raw menu and opening-hours document from the phoneline dashboard backend and normalizes it into the flat, bot-curated representation the voice agent consumes: category tree, item list, customization dictionary, open/closed status and formatted hours.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := run(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func run(cfg *models.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	doc := loadDocument(cfg)
	converted := menu.Convert(doc)
	curated := menu.Curate(converted)
	summary := profile.Summarize(doc, curated, time.Now().In(loc))

	if cfg.SaveSnapshots {
		writeSnapshots(cfg, doc, converted, curated)
	}

	payload, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

// loadDocument fetches the vendor document, or fabricates one in demo
// mode. Fetch failure is not fatal: the pipeline runs on an empty
// document and every field degrades to its fallback.
func loadDocument(cfg *models.Config) *models.RawDocument {
	if cfg.Demo {
		return factories.NewDocumentFactory(cfg.Seed).CreateRawDocument(cfg)
	}

	client := source.NewClient(cfg.BaseURL)
	doc, err := client.FetchRestaurantInfo(context.Background(), cfg.PhoneNumber)
	if err != nil {
		log.Printf("Error fetching restaurant data: %v", err)
		return &models.RawDocument{}
	}
	return doc
}

func writeSnapshots(cfg *models.Config, doc *models.RawDocument, converted *models.ConvertedMenu, curated *models.CuratedData) {
	writer := buildSnapshotWriter(cfg)
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Failed to close snapshot writer: %v", err)
		}
	}()

	restaurantName := profile.RestaurantName(&doc.Restaurant)
	snapshots := []struct {
		suffix  string
		payload any
	}{
		{"_data", doc},
		{"_simplified", curated},
		{"_converted", converted},
	}

	for _, snapshot := range snapshots {
		payload, err := json.MarshalIndent(snapshot.payload, "", "    ")
		if err != nil {
			log.Printf("Failed to encode snapshot %s: %v", snapshot.suffix, err)
			continue
		}
		name := output.SnapshotName(restaurantName, snapshot.suffix)
		if err := writer.WriteSnapshot(name, payload); err != nil {
			log.Printf("Failed to write snapshot %s: %v", name, err)
		}
	}
}

func buildSnapshotWriter(cfg *models.Config) output.SnapshotWriter {
	writers := []output.SnapshotWriter{output.NewFileOutput(cfg.OutputFolder)}

	if cfg.KafkaEnabled {
		kafka, err := output.NewKafkaOutput(cfg)
		if err != nil {
			log.Printf("Kafka output unavailable: %v", err)
		} else {
			writers = append(writers, kafka)
		}
	}

	if cfg.CloudStorage {
		factory, err := cloudwriter.NewS3WriterFactory(cfg.S3Region)
		if err != nil {
			log.Printf("S3 output unavailable: %v", err)
		} else {
			writers = append(writers, output.NewCloudOutput(factory, cfg.S3BucketName, cfg.S3Folder))
		}
	}

	return output.NewMultiOutput(writers...)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./voicemenu.yaml)")

	rootCmd.Flags().String("phone-number", "", "Restaurant phone number to look up")
	rootCmd.Flags().String("base-url", models.DefaultDashboardBaseURL, "Dashboard backend base URL")
	rootCmd.Flags().String("timezone", "Canada/Eastern", "Restaurant timezone for open/closed evaluation")
	rootCmd.Flags().Bool("save-snapshots", false, "Write raw/simplified/converted snapshots")
	rootCmd.Flags().String("output-folder", "data", "Folder for snapshot files")
	rootCmd.Flags().Bool("kafka-enabled", false, "Also publish snapshots to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("kafka-topic", "restaurant-snapshots", "Kafka topic for snapshots")
	rootCmd.Flags().Bool("cloud-storage", false, "Also upload snapshots to S3")
	rootCmd.Flags().String("s3-bucket-name", "", "S3 bucket for snapshots")
	rootCmd.Flags().String("s3-region", "us-east-1", "S3 region")
	rootCmd.Flags().Bool("demo", false, "Generate a demo document instead of fetching")
	rootCmd.Flags().Int("seed", 42, "Random seed for the demo document")

	flags := rootCmd.Flags()
	viper.BindPFlag("phone_number", flags.Lookup("phone-number"))
	viper.BindPFlag("base_url", flags.Lookup("base-url"))
	viper.BindPFlag("timezone", flags.Lookup("timezone"))
	viper.BindPFlag("save_snapshots", flags.Lookup("save-snapshots"))
	viper.BindPFlag("output_folder", flags.Lookup("output-folder"))
	viper.BindPFlag("kafka_enabled", flags.Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", flags.Lookup("kafka-broker-list"))
	viper.BindPFlag("kafka_topic", flags.Lookup("kafka-topic"))
	viper.BindPFlag("cloud_storage", flags.Lookup("cloud-storage"))
	viper.BindPFlag("s3_bucket_name", flags.Lookup("s3-bucket-name"))
	viper.BindPFlag("s3_region", flags.Lookup("s3-region"))
	viper.BindPFlag("demo", flags.Lookup("demo"))
	viper.BindPFlag("seed", flags.Lookup("seed"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
