package assessor

import (
	"fmt"
	"strings"

	"github.com/harborwatch/route-risk/internal/model"
)

// promptEventLimit caps how many recent events are inlined into the prompt.
const promptEventLimit = 5

const systemPrompt = `You are an expert geopolitical risk analyst specializing in maritime security and international trade.

Your task is to analyze a shipping route and provide an accurate geopolitical risk assessment based on political conditions, security threats, trade relations, and current events.

You must respond with a JSON object containing:
1. "risk_score": an integer from 1-10 (1 = minimal political/security risk, 10 = extreme risk)
2. "risk_description": a detailed explanation of the specific threats and your reasoning
3. "geopolitical_summary": a concise summary of the key political and security factors

Consider political stability, sanctions and embargoes, maritime security threats, chokepoint status, port labor conditions, cargo-specific restrictions, and recent events. Focus on actionable intelligence for shipping decision-makers.`

// BuildPrompt renders the user prompt for one assessment bundle.
func BuildPrompt(b Bundle) string {
	var sb strings.Builder

	sb.WriteString("Please assess the geopolitical and security risk for this cargo shipment:\n\n")
	sb.WriteString("ROUTE INFORMATION:\n")
	fmt.Fprintf(&sb, "- Departure Port: %s\n", b.DeparturePort)
	fmt.Fprintf(&sb, "- Destination Port: %s\n", b.DestinationPort)
	fmt.Fprintf(&sb, "- Departure Date: %s\n", b.DepartureDate)
	fmt.Fprintf(&sb, "- Estimated Transit Time: %d days\n", b.TransitDays)
	fmt.Fprintf(&sb, "- Route Distance: %.0f km\n", b.DistanceKm)
	fmt.Fprintf(&sb, "- Carrier: %s\n", b.CarrierName)
	fmt.Fprintf(&sb, "- Cargo Type: %s\n\n", b.GoodsType)

	sb.WriteString("DEPARTURE COUNTRY RISK PROFILE:\n")
	writeCountryProfile(&sb, b.Departure)

	sb.WriteString("\nDESTINATION COUNTRY RISK PROFILE:\n")
	writeCountryProfile(&sb, b.Destination)

	sb.WriteString("\nROUTE HAZARDS:\n")
	sb.WriteString("- Critical Chokepoints:\n")
	writeList(&sb, b.Hazards.Chokepoints)
	sb.WriteString("- Security Risk Zones:\n")
	writeList(&sb, b.Hazards.SecurityZones)

	sb.WriteString("\nRECENT GEOPOLITICAL INTELLIGENCE:\n")
	writeIntel(&sb, b)

	sb.WriteString("\nRespond in JSON format:\n")
	sb.WriteString(`{"risk_score": <integer 1-10>, "risk_description": "<detailed explanation>", "geopolitical_summary": "<concise summary>"}`)
	sb.WriteString("\n")

	return sb.String()
}

func writeCountryProfile(sb *strings.Builder, p model.CountryProfile) {
	fmt.Fprintf(sb, "- Country: %s\n", p.Country)
	fmt.Fprintf(sb, "- Political Stability Score: %d/10\n", p.PoliticalStability)
	fmt.Fprintf(sb, "- Trade Freedom Index: %d/100\n", p.TradeFreedom)
	fmt.Fprintf(sb, "- Corruption Level: %s\n", p.CorruptionLevel)
	fmt.Fprintf(sb, "- Security Threat Level: %s\n", p.SecurityThreat)
	fmt.Fprintf(sb, "- Sanctions Status: %s\n", p.SanctionsStatus)
	fmt.Fprintf(sb, "- Port Security Rating: %s\n", p.PortSecurity)
	fmt.Fprintf(sb, "- Labor Relations: %s\n", p.LaborConditions)
	fmt.Fprintf(sb, "- Regulatory Environment: %s\n", p.RegulatoryStability)
}

func writeList(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("  * None identified\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(sb, "  * %s\n", item)
	}
}

func writeIntel(sb *strings.Builder, b Bundle) {
	events := b.Intel.Events
	if len(events) == 0 {
		sb.WriteString("- No significant recent events identified affecting this route\n")
		return
	}
	if len(events) > promptEventLimit {
		events = events[:promptEventLimit]
	}
	sb.WriteString("- Recent Events:\n")
	for _, ev := range events {
		fmt.Fprintf(sb, "  * %s (relevance %d/10)\n", ev.Title, ev.RelevanceScore)
		if ev.Summary != "" {
			fmt.Fprintf(sb, "    %s\n", truncate(ev.Summary, 200))
		}
	}
	fmt.Fprintf(sb, "- Overall News Sentiment: %s\n", b.Intel.Sentiment)
	fmt.Fprintf(sb, "- Intelligence Confidence Level: %s\n", b.Intel.Confidence)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
