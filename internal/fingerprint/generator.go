package fingerprint

import (
	"fmt"

	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/utils"
)

type device struct {
	model string
	build string
}

var androidVersions = []string{"10", "11", "12", "13", "14"}

var devices = []device{
	{"SM-S918B", "TP1A.220624.014"},
	{"SM-G991B", "TP1A.220624.014"},
	{"SM-A546B", "UP1A.231005.007"},
	{"Pixel 7", "TQ3A.230805.001"},
	{"Pixel 8 Pro", "UD1A.230803.041"},
	{"2201116SG", "SKQ1.211006.001"},
	{"M2101K6G", "RKQ1.200826.002"},
	{"CPH2449", "TP1A.220905.001"},
	{"RMX3371", "RKQ1.211119.001"},
	{"V2207", "TP1A.220624.014"},
}

type chromeBuild struct {
	major int
	full  string
}

var chromeBuilds = []chromeBuild{
	{120, "120.0.6099.230"},
	{121, "121.0.6167.178"},
	{122, "122.0.6261.119"},
	{123, "123.0.6312.118"},
	{124, "124.0.6367.179"},
	{125, "125.0.6422.165"},
	{126, "126.0.6478.122"},
}

// Generate builds a random Android WebView identity for session
func Generate(session string) domain.Fingerprint {
	version := androidVersions[utils.RandomInt(0, len(androidVersions)-1)]
	dev := devices[utils.RandomInt(0, len(devices)-1)]
	chrome := chromeBuilds[utils.RandomInt(0, len(chromeBuilds)-1)]

	userAgent := fmt.Sprintf(
		"Mozilla/5.0 (Linux; Android %s; %s Build/%s; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/%s Mobile Safari/537.36",
		version, dev.model, dev.build, chrome.full,
	)
	secChUa := fmt.Sprintf(
		`"Chromium";v="%d", "Android WebView";v="%d", "Not-A.Brand";v="99"`,
		chrome.major, chrome.major,
	)

	return domain.Fingerprint{
		SessionName: session,
		UserAgent:   userAgent,
		SecChUa:     secChUa,
	}
}
