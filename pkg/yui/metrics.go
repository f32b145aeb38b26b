package yui

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricEventsPosted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yui",
		Name:      "events_posted_total",
		Help:      "Events posted to dialog mailboxes, by event type.",
	}, []string{"type"})
	metricEventsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yui",
		Name:      "events_delivered_total",
		Help:      "Events returned from WaitForEvent, by event type.",
	}, []string{"type"})
	metricEventsReplaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "yui",
		Name:      "events_replaced_total",
		Help:      "Pending events overwritten by a later post before delivery.",
	})
	metricPumpWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "yui",
		Name:      "pump_wait_seconds",
		Help:      "Time spent inside WaitForEvent.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
	})
	metricDialogsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yui",
		Name:      "dialogs_open",
		Help:      "Dialogs on the open-dialog stack.",
	})
)
