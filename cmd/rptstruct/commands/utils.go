package commands

import (
	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlag binds a flag to a viper key; the flag wins only when set explicitly.
func bindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	_ = viper.BindPFlag(key, flag)
}

// logSizeStats logs the distribution of generated file sizes.
func logSizeStats(log logrus.FieldLogger, sizes []float64) {
	data := stats.Float64Data(sizes)
	lo, err := data.Min()
	if err != nil {
		log.WithError(err).Warn("No sizes to summarize")
		return
	}
	hi, _ := data.Max()
	mean, _ := data.Mean()
	median, _ := data.Median()

	log.WithFields(logrus.Fields{
		"files":  len(sizes),
		"min":    lo,
		"max":    hi,
		"mean":   mean,
		"median": median,
	}).Info("Generated file sizes")
}
