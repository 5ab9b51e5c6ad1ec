// Package displayer implements the interactive calculator UI.
//
// The layout mirrors the tool's workflow: a cable entry form and the
// schedule table on the left, the tray configuration and the computed
// results on the right. Every edit recalculates immediately.
package displayer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/ashpursglove/traycalc/internal/engine"
	"github.com/ashpursglove/traycalc/internal/library"
	"github.com/ashpursglove/traycalc/internal/models"
	"github.com/ashpursglove/traycalc/internal/project"
	"github.com/ashpursglove/traycalc/pkg/log"
)

const customOption = 0 // first drop-down entry is "Custom ..."

// Displayer owns the tview application and the calculator state.
type Displayer struct {
	app       *tview.Application
	catalogue *library.Catalogue
	proj      *project.Project
	path      string
	theme     Theme

	// UI elements cached for updates
	titleText  *tview.TextView
	statusText *tview.TextView
	helpText   *tview.TextView
	results    *tview.TextView

	cableForm   *tview.Form
	cableDrop   *tview.DropDown
	cableName   *tview.InputField
	cableDia    *tview.InputField
	cableWeight *tview.InputField
	cableQty    *tview.InputField

	trayForm   *tview.Form
	trayDrop   *tview.DropDown
	trayName   *tview.InputField
	trayWidth  *tview.InputField
	trayHeight *tview.InputField
	trayLoad   *tview.InputField
	traySelf   *tview.InputField
	trayFill   *tview.InputField

	table *tview.Table

	focusRing []tview.Primitive
	ready     bool
}

// New creates a Displayer over the given catalogue and project. The
// path is where Ctrl+S saves; empty means "tray_project.json".
func New(catalogue *library.Catalogue, proj *project.Project, path string, dark bool) *Displayer {
	if proj == nil {
		proj = project.New()
	}
	theme := DarkTheme()
	if !dark {
		theme = LightTheme()
	}
	return &Displayer{
		app:       tview.NewApplication(),
		catalogue: catalogue,
		proj:      proj,
		path:      path,
		theme:     theme,
	}
}

// Run builds the UI and blocks until the user quits.
func (d *Displayer) Run() error {
	d.buildHeader()
	d.buildCableForm()
	d.buildTable()
	d.buildTrayForm()
	d.buildResults()

	left := tview.NewFlex().SetDirection(tview.FlexRow)
	left.AddItem(d.cableForm, 0, 1, true)
	left.AddItem(d.table, 0, 1, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow)
	right.AddItem(d.trayForm, 0, 1, false)
	right.AddItem(d.results, 0, 1, false)

	content := tview.NewFlex()
	content.AddItem(left, 0, 3, true)
	content.AddItem(right, 0, 2, false)

	header := tview.NewFlex().SetDirection(tview.FlexRow)
	header.AddItem(d.titleText, 1, 0, false)
	header.AddItem(d.statusText, 1, 0, false)
	header.AddItem(d.helpText, 1, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(header, 3, 0, false)
	mainFlex.AddItem(content, 0, 1, true)

	d.focusRing = []tview.Primitive{d.cableForm, d.table, d.trayForm}

	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlS:
			d.saveProject()
			return nil
		case tcell.KeyCtrlN:
			d.clearAll()
			return nil
		case tcell.KeyCtrlT:
			d.toggleTheme()
			return nil
		case tcell.KeyCtrlR:
			d.recalculate()
			return nil
		case tcell.KeyCtrlF:
			d.cycleFocus()
			return nil
		case tcell.KeyCtrlQ:
			d.app.Stop()
			return nil
		}
		return event
	})

	d.applyTheme()
	d.refreshTable()
	d.ready = true
	d.recalculate()

	d.app.SetRoot(mainFlex, true)
	return d.app.Run()
}

func (d *Displayer) buildHeader() {
	d.titleText = tview.NewTextView().SetTextAlign(tview.AlignCenter).
		SetText("traycalc - cable tray load & fill calculator")
	d.statusText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true)
	d.helpText = tview.NewTextView().SetTextAlign(tview.AlignCenter).
		SetText("Ctrl+F panes  Ctrl+R recalc  Ctrl+S save  Ctrl+N new  Ctrl+T theme  Ctrl+Q quit  (table: a add, d delete, c clear)")
}

func (d *Displayer) buildCableForm() {
	options := append([]string{"Custom cable..."}, cableNames(d.catalogue)...)

	d.cableName = tview.NewInputField().SetLabel("Name").SetFieldWidth(30).SetText("Custom cable")
	d.cableDia = tview.NewInputField().SetLabel("Diameter (mm)").SetFieldWidth(10).SetText("10.0")
	d.cableWeight = tview.NewInputField().SetLabel("Weight (kg/m)").SetFieldWidth(10).SetText("0.100")
	d.cableQty = tview.NewInputField().SetLabel("Quantity").SetFieldWidth(6).SetText("1")

	d.cableDrop = tview.NewDropDown().SetLabel("Cable type").SetOptions(options, d.onCableSelected)
	d.cableDrop.SetCurrentOption(customOption)

	d.cableForm = tview.NewForm()
	d.cableForm.SetBorder(true)
	d.cableForm.SetTitle(" Cables in Tray ")
	d.cableForm.AddFormItem(d.cableDrop)
	d.cableForm.AddFormItem(d.cableName)
	d.cableForm.AddFormItem(d.cableDia)
	d.cableForm.AddFormItem(d.cableWeight)
	d.cableForm.AddFormItem(d.cableQty)
	d.cableForm.AddButton("Add cable", d.addCable)
	d.cableForm.AddButton("Clear all", d.clearCables)
}

func (d *Displayer) onCableSelected(text string, index int) {
	if index <= customOption {
		d.cableName.SetDisabled(false)
		d.cableDia.SetDisabled(false)
		d.cableWeight.SetDisabled(false)
		if strings.TrimSpace(d.cableName.GetText()) == "" {
			d.cableName.SetText("Custom cable")
		}
		return
	}

	cable, ok := d.catalogue.FindCable(text)
	if !ok {
		return
	}
	d.cableName.SetText(cable.Name)
	d.cableDia.SetText(fmt.Sprintf("%.1f", cable.DiameterMM))
	d.cableWeight.SetText(fmt.Sprintf("%.3f", cable.WeightKgM))
	d.cableName.SetDisabled(true)
	d.cableDia.SetDisabled(true)
	d.cableWeight.SetDisabled(true)
}

func (d *Displayer) buildTrayForm() {
	options := append([]string{"Custom tray..."}, trayNames(d.catalogue)...)

	tray := d.proj.Tray
	d.trayName = tview.NewInputField().SetLabel("Tray name").SetFieldWidth(30).SetText(tray.Name)
	d.trayWidth = tview.NewInputField().SetLabel("Width (mm)").SetFieldWidth(10).SetText(fmt.Sprintf("%.1f", tray.WidthMM))
	d.trayHeight = tview.NewInputField().SetLabel("Side height (mm)").SetFieldWidth(10).SetText(fmt.Sprintf("%.1f", tray.HeightMM))
	d.trayLoad = tview.NewInputField().SetLabel("Max load (kg/m)").SetFieldWidth(10).SetText(fmt.Sprintf("%.1f", tray.MaxLoadKgM))
	d.traySelf = tview.NewInputField().SetLabel("Self-weight (kg/m)").SetFieldWidth(10).SetText(fmt.Sprintf("%.2f", tray.SelfWeightKgM))
	d.trayFill = tview.NewInputField().SetLabel("Max fill ratio").SetFieldWidth(6).SetText(fmt.Sprintf("%.2f", tray.MaxFillRatio))

	for _, field := range []*tview.InputField{d.trayName, d.trayWidth, d.trayHeight, d.trayLoad, d.traySelf, d.trayFill} {
		field.SetChangedFunc(func(string) { d.recalculate() })
	}

	d.trayDrop = tview.NewDropDown().SetLabel("Tray type").SetOptions(options, d.onTraySelected)
	d.trayDrop.SetCurrentOption(customOption)

	d.trayForm = tview.NewForm()
	d.trayForm.SetBorder(true)
	d.trayForm.SetTitle(" Tray Configuration ")
	d.trayForm.AddFormItem(d.trayDrop)
	d.trayForm.AddFormItem(d.trayName)
	d.trayForm.AddFormItem(d.trayWidth)
	d.trayForm.AddFormItem(d.trayHeight)
	d.trayForm.AddFormItem(d.trayLoad)
	d.trayForm.AddFormItem(d.traySelf)
	d.trayForm.AddFormItem(d.trayFill)
}

func (d *Displayer) onTraySelected(text string, index int) {
	locked := index > customOption
	if locked {
		tray, ok := d.catalogue.FindTray(text)
		if !ok {
			return
		}
		d.trayName.SetText(tray.Name)
		d.trayWidth.SetText(fmt.Sprintf("%.1f", tray.WidthMM))
		d.trayHeight.SetText(fmt.Sprintf("%.1f", tray.HeightMM))
		d.trayLoad.SetText(fmt.Sprintf("%.1f", tray.MaxLoadKgM))
		d.traySelf.SetText(fmt.Sprintf("%.2f", tray.SelfWeightKgM))
		d.trayFill.SetText(fmt.Sprintf("%.2f", tray.MaxFillRatio))
	} else if strings.TrimSpace(d.trayName.GetText()) == "" {
		d.trayName.SetText("Custom tray")
	}

	for _, field := range []*tview.InputField{d.trayName, d.trayWidth, d.trayHeight, d.trayLoad, d.traySelf} {
		field.SetDisabled(locked)
	}
	d.recalculate()
}

func (d *Displayer) buildTable() {
	d.table = tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	d.table.SetBorder(true)
	d.table.SetTitle(" Schedule ")

	d.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'a':
			d.addCable()
			return nil
		case 'd':
			d.removeSelected()
			return nil
		case 'c':
			d.clearCables()
			return nil
		}
		return event
	})
}

func (d *Displayer) buildResults() {
	d.results = tview.NewTextView().SetDynamicColors(true)
	d.results.SetBorder(true)
	d.results.SetTitle(" Results ")
}

// ---------------------------------------------------------------
// Actions
// ---------------------------------------------------------------

func (d *Displayer) addCable() {
	name := strings.TrimSpace(d.cableName.GetText())
	if name == "" {
		name = "Custom cable"
	}
	dia, err1 := strconv.ParseFloat(strings.TrimSpace(d.cableDia.GetText()), 64)
	weight, err2 := strconv.ParseFloat(strings.TrimSpace(d.cableWeight.GetText()), 64)
	qty, err3 := strconv.Atoi(strings.TrimSpace(d.cableQty.GetText()))

	if err1 != nil || err2 != nil || err3 != nil || dia <= 0 || weight <= 0 || qty <= 0 {
		d.setStatus(d.theme.TagWarn, "Invalid cable data: diameter, weight and quantity must all be > 0")
		return
	}

	d.proj.Entries = append(d.proj.Entries, models.CableEntry{
		Cable:    models.Cable{Name: name, DiameterMM: dia, WeightKgM: weight},
		Quantity: qty,
	})
	d.refreshTable()
	d.recalculate()
}

func (d *Displayer) removeSelected() {
	row, _ := d.table.GetSelection()
	idx := row - 1 // header row
	if idx < 0 || idx >= len(d.proj.Entries) {
		return
	}
	d.proj.Entries = append(d.proj.Entries[:idx], d.proj.Entries[idx+1:]...)
	d.refreshTable()
	d.recalculate()
}

func (d *Displayer) clearCables() {
	d.proj.Entries = nil
	d.refreshTable()
	d.recalculate()
}

func (d *Displayer) clearAll() {
	d.proj = project.New()
	d.trayDrop.SetCurrentOption(customOption)
	d.refreshTable()
	d.recalculate()
	d.setStatus(d.theme.TagDim, "New project")
}

func (d *Displayer) saveProject() {
	path := d.path
	if path == "" {
		path = "tray_project.json"
	}
	d.proj.Tray = d.trayFromFields()

	saved, err := d.proj.Save(path)
	if err != nil {
		log.Error("failed to save project", zap.Error(err))
		d.setStatus(d.theme.TagWarn, "Save failed: "+err.Error())
		return
	}
	d.path = saved
	d.setStatus(d.theme.TagOK, "Saved "+saved)
}

func (d *Displayer) toggleTheme() {
	if d.theme.Name == "dark" {
		d.theme = LightTheme()
	} else {
		d.theme = DarkTheme()
	}
	d.applyTheme()
	d.recalculate()
}

func (d *Displayer) cycleFocus() {
	current := d.app.GetFocus()
	for i, p := range d.focusRing {
		if p == current || formHasFocus(p) {
			d.app.SetFocus(d.focusRing[(i+1)%len(d.focusRing)])
			return
		}
	}
	d.app.SetFocus(d.focusRing[0])
}

// formHasFocus reports whether p is a form whose focused element is one
// of its items (forms report the item, not themselves, as app focus).
func formHasFocus(p tview.Primitive) bool {
	form, ok := p.(*tview.Form)
	return ok && form.HasFocus()
}

// ---------------------------------------------------------------
// Recalculation and rendering
// ---------------------------------------------------------------

func (d *Displayer) trayFromFields() models.Tray {
	parse := func(field *tview.InputField, fallback float64) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(field.GetText()), 64)
		if err != nil {
			return fallback
		}
		return v
	}

	name := strings.TrimSpace(d.trayName.GetText())
	if name == "" {
		name = "Tray"
	}
	return models.Tray{
		Name:          name,
		WidthMM:       parse(d.trayWidth, 0),
		HeightMM:      parse(d.trayHeight, 0),
		MaxLoadKgM:    parse(d.trayLoad, 0),
		SelfWeightKgM: parse(d.traySelf, 0),
		MaxFillRatio:  parse(d.trayFill, 0.6),
	}
}

func (d *Displayer) refreshTable() {
	d.table.Clear()
	for col, h := range []string{"Cable", "Diameter (mm)", "Weight (kg/m)", "Qty"} {
		d.table.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetAlign(tview.AlignCenter).
			SetTextColor(d.theme.Accent))
	}
	for i, entry := range d.proj.Entries {
		d.table.SetCell(i+1, 0, tview.NewTableCell(entry.Cable.Name))
		d.table.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%.1f", entry.Cable.DiameterMM)).SetAlign(tview.AlignRight))
		d.table.SetCell(i+1, 2, tview.NewTableCell(fmt.Sprintf("%.3f", entry.Cable.WeightKgM)).SetAlign(tview.AlignRight))
		d.table.SetCell(i+1, 3, tview.NewTableCell(strconv.Itoa(entry.Quantity)).SetAlign(tview.AlignRight))
	}
}

func (d *Displayer) recalculate() {
	if !d.ready {
		return
	}

	d.proj.Tray = d.trayFromFields()
	stats := engine.Evaluate(d.proj.Entries, d.proj.Tray)
	status := stats.Classify()

	structTag := d.severityTag(stats.StructuralSeverity())
	fillTag := d.severityTag(stats.FillSeverity())

	var b strings.Builder
	text := d.theme.TagText
	fmt.Fprintf(&b, "[%s]Cable weight:         %10.3f kg/m\n", text, stats.TotalCableWeightKgM)
	fmt.Fprintf(&b, "[%s]Tray self-weight:     %10.3f kg/m\n", text, stats.TraySelfWeightKgM)
	totalTag := text
	if stats.OverloadedStructural() {
		totalTag = d.theme.TagWarn
	}
	fmt.Fprintf(&b, "[%s]Total weight:         %10.3f kg/m\n", totalTag, stats.TotalWeightKgM)
	fmt.Fprintf(&b, "[%s]Tray allowable load:  %10.1f kg/m\n", text, stats.AllowableLoadKgM)
	fmt.Fprintf(&b, "[%s]Structural util.:     %10.1f %%\n", structTag, stats.StructuralUtilisationPct)
	fmt.Fprintf(&b, "[%s]Total cable area:     %10.0f mm²\n", text, stats.TotalCableAreaMM2)
	fmt.Fprintf(&b, "[%s]Tray usable area:     %10.0f mm²\n", text, stats.TrayUsableAreaMM2)
	fmt.Fprintf(&b, "[%s]Area fill:            %10.1f %%\n", fillTag, stats.AreaFillPct)
	fmt.Fprintf(&b, "[%s]Recommended max fill: %10.1f %%\n", text, stats.MaxAreaFillPct)
	d.results.SetText(b.String())

	statusTag := d.theme.TagOK
	switch {
	case status == engine.StatusNoCables:
		statusTag = d.theme.TagDim
	case !status.OK():
		statusTag = d.theme.TagWarn
	}
	d.setStatus(statusTag, status.String())
}

func (d *Displayer) severityTag(sev engine.Severity) string {
	switch sev {
	case engine.SeverityOver:
		return d.theme.TagWarn
	case engine.SeverityOK:
		return d.theme.TagOK
	}
	return d.theme.TagText
}

func (d *Displayer) setStatus(tag, text string) {
	d.statusText.SetText(fmt.Sprintf("[%s]%s[-]", tag, text))
}

func (d *Displayer) applyTheme() {
	t := d.theme

	for _, tv := range []*tview.TextView{d.titleText, d.statusText, d.helpText, d.results} {
		tv.SetBackgroundColor(t.Background)
		tv.SetTextColor(t.Text)
	}
	d.titleText.SetTextColor(t.Accent)

	for _, form := range []*tview.Form{d.cableForm, d.trayForm} {
		form.SetBackgroundColor(t.Panel)
		form.SetBorderColor(t.Border)
		form.SetTitleColor(t.Accent)
		form.SetLabelColor(t.Text)
		form.SetFieldBackgroundColor(t.FieldBg)
		form.SetFieldTextColor(t.Text)
		form.SetButtonBackgroundColor(t.Accent)
		form.SetButtonTextColor(t.Background)
	}

	d.table.SetBackgroundColor(t.Panel)
	d.table.SetBorderColor(t.Border)
	d.table.SetTitleColor(t.Accent)
	d.table.SetSelectedStyle(tcell.StyleDefault.Background(t.Highlight).Foreground(t.Text))
	d.results.SetBorderColor(t.Border)
	d.results.SetTitleColor(t.Accent)
	d.results.SetBackgroundColor(t.Panel)

	d.refreshTable()
}

func cableNames(c *library.Catalogue) []string {
	names := make([]string, 0, len(c.Cables))
	for _, cable := range c.Cables {
		names = append(names, cable.Name)
	}
	return names
}

func trayNames(c *library.Catalogue) []string {
	names := make([]string, 0, len(c.Trays))
	for _, tray := range c.Trays {
		names = append(names, tray.Name)
	}
	return names
}
