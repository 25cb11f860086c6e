package gnssgo

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

/* decodedMessages counts successfully decoded RTCM3 messages by type,
* alongside the per-struct Nmsg3 tally the decoder already keeps. */
var decodedMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "gnssgo_rtcm3_messages_decoded_total",
	Help: "Number of RTCM3 messages successfully decoded, by message type.",
}, []string{"type"})

/* rejectedFrames counts frames dropped for a CRC mismatch. */
var rejectedFrames = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "gnssgo_rtcm3_frames_rejected_total",
	Help: "Number of RTCM3 frames rejected before dispatch (CRC mismatch).",
})

func countDecoded(ctype int) {
	decodedMessages.WithLabelValues(strconv.Itoa(ctype)).Inc()
}

/* Collector returns the decoder's Prometheus collectors. The core never
* registers them itself; a caller that wants to scrape message-type
* counts registers the result with its own registry (or the default
* one via prometheus.DefaultRegisterer). */
func Collector() []prometheus.Collector {
	return []prometheus.Collector{decodedMessages, rejectedFrames}
}

/* RegisterMetrics registers the decoder's collectors with reg. Safe to
* call more than once across independent registries; returns the error
* from the first failed registration, if any. */
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range Collector() {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
