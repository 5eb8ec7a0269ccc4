package metric

import (
	"log/slog"
	"time"

	"moncal/src-cal/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func storeEmptyRead(as *utils.AppState, tickerInterval *time.Duration) {
	storeEmptyRead := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moncal_store_empty_read_microsec",
		Help: "The latency of an empty kv store read in microseconds",
	})
	good := true
	if err := prometheus.Register(storeEmptyRead); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register moncal_store_empty_read_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("moncal_store_empty_read_microsec metric registered")
		storeEmptyRead.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(storeEmptyRead) {
				case true:
					slog.Debug("moncal_store_empty_read_microsec metric unregistered")
				case false:
					slog.Warn("moncal_store_empty_read_microsec metric not registered")
				}
				return
			case <-ticker.C:
				latency, err := probe(as)
				if err != nil {
					slog.Error("can't get store latency", "error", err)
					continue
				}
				storeEmptyRead.Set(float64(latency.Microseconds()))
			}
		}
	}()
}

func storeRead(as *utils.AppState, clearTickerInterval *time.Duration) {
	storeRead := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moncal_store_read_microsec",
		Help: "The latency of a kv store read in microseconds",
	})
	good := true
	if err := prometheus.Register(storeRead); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register moncal_store_read_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("moncal_store_read_microsec metric registered")
		storeRead.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(storeRead) {
				case true:
					slog.Debug("moncal_store_read_microsec metric unregistered")
				case false:
					slog.Warn("moncal_store_read_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.StoreRead:
				storeRead.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				storeRead.Set(0)
			}
		}
	}()
}

func storeWrite(as *utils.AppState, clearTickerInterval *time.Duration) {
	storeWrite := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moncal_store_write_microsec",
		Help: "The latency of a kv store write in microseconds",
	})
	good := true
	if err := prometheus.Register(storeWrite); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register moncal_store_write_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("moncal_store_write_microsec metric registered")
		storeWrite.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(storeWrite) {
				case true:
					slog.Debug("moncal_store_write_microsec metric unregistered")
				case false:
					slog.Warn("moncal_store_write_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.StoreWrite:
				storeWrite.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				storeWrite.Set(0)
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	storeEmptyRead(as, &tickerInterval)
	storeRead(as, &clearTickerInterval)
	storeWrite(as, &clearTickerInterval)
}
