package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>NEUROGEN-X vs Existing Therapies</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --muted: #6c757d;
  --comparator: #a83232; --highlight: #32a852;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --muted: #adb5bd;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; }
.layout { display: grid; grid-template-columns: 260px 1fr; min-height: 100vh; }
.layout.static { grid-template-columns: 1fr; }
aside { background: var(--card-bg); border-right: 1px solid var(--border); padding: 1rem; }
aside h2 { font-size: 1rem; margin-bottom: 1rem; }
aside label { display: block; font-size: .8125rem; margin: .75rem 0 .25rem; }
aside input[type=range], aside select { width: 100%; }
main { padding: 1rem 1.5rem; max-width: 1400px; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.scenario { font-size: .875rem; margin-bottom: 1rem; }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 900px) { .charts, .layout { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box svg { width: 100%; height: auto; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; margin-bottom: 1.5rem; }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
td.num { text-align: right; }
tr:nth-child(even) { background: var(--table-alt); }
tr.computed td:first-child { color: var(--highlight); font-weight: 700; }
section h2 { font-size: 1.125rem; margin: 1rem 0 .5rem; }
section ul { margin-left: 1.25rem; font-size: .875rem; }
.disclaimer { color: var(--muted); font-size: .75rem; margin-top: 1.5rem; }
</style>
</head>
<body>
<div class="layout{{if not .Interactive}} static{{end}}">
{{if .Interactive}}
<aside>
  <h2>Adjust Scenario Parameters</h2>
  <form id="scenario" method="get" action="{{.Action}}">
    <input type="hidden" name="submitted" value="1">
    <label for="dose">Nanorobot Dose (millions): <output id="dose-value">{{.Scenario.Dose}}</output></label>
    <input type="range" id="dose" name="dose" min="{{.DoseMin}}" max="{{.DoseMax}}" value="{{.Scenario.Dose}}"
      oninput="document.getElementById('dose-value').textContent=this.value" onchange="this.form.submit()">
    <label for="ai_level">AI Optimization Level</label>
    <select id="ai_level" name="ai_level" onchange="this.form.submit()">
      {{range .Levels}}<option value="{{.}}"{{if eq . $.Scenario.AILevel}} selected{{end}}>{{.}}</option>{{end}}
    </select>
    <label><input type="checkbox" name="regen" value="true"{{if .Scenario.RegenEnabled}} checked{{end}} onchange="this.form.submit()">
      Activate Regenerative Neuron Module</label>
    <noscript><button type="submit">Update</button></noscript>
  </form>
</aside>
{{end}}
<main>
<header>
  <h1>{{.Title}}</h1>
  <p>{{.Intro}}</p>
  <p>Generated {{.GeneratedAt}}</p>
</header>

{{if .HasScenario}}
<p class="scenario" id="scenario-summary">Dose {{.Scenario.Dose}}M &middot; AI level {{.Scenario.AILevel}} &middot; Regeneration {{if .Scenario.RegenEnabled}}on{{else}}off{{end}}</p>
{{end}}

{{if .Rows}}
<section class="charts" id="charts">
  <div class="chart-box" id="chart-efficacy">{{.EfficacyChart}}</div>
  <div class="chart-box" id="chart-cost">{{.CostChart}}</div>
</section>

<section id="overview">
<h2>Full Treatment Overview</h2>
<table>
<thead><tr><th>Treatment</th><th>Efficacy</th><th>Cost</th><th>Issues</th></tr></thead>
<tbody>
{{range .Rows}}<tr{{if .Computed}} class="computed"{{end}}><td>{{.Name}}</td><td class="num">{{.Efficacy}}</td><td class="num">{{.Cost}}</td><td>{{.Issues}}</td></tr>
{{end}}</tbody>
</table>
</section>
{{else}}
<p>No treatments to compare.</p>
{{end}}

<section id="highlights">
<h2>{{.HighlightsTitle}}</h2>
<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>
<h2>Data sourced from</h2>
<ul>{{range .Sources}}<li>{{.}}</li>{{end}}</ul>
</section>
<p class="disclaimer">{{.Disclaimer}}</p>
</main>
</div>
</body>
</html>`
