package extract

// Built-in pattern catalogue, keyed by model.PatternField names. Order
// within a chain is precedence: strict label forms first, looser fallbacks
// last, to survive degraded text layers (extra colons, glued labels,
// inconsistent spacing) without a syntactic document model.
//
// Value-terminating groups like `(?:\s+[A-Z]|\s*$)` consume the boundary
// instead of looking ahead; the capture group is unaffected.
var catalogue = map[string][]Pattern{
	"patient_id": {
		compile(`Patient\s*ID:\s*(\d+)`),
		compile(`PatientID:\s*(\d+)`),
		compile(`Patient\s*ID\s*:\s*(\d+)`),
		compile(`ID:\s*(\d+)`), // last resort, matches any "ID:" label
	},
	"study_id": {
		compile(`Study\s*ID:\s*(\d+)`),
		compile(`StudyID:\s*(\d+)`),
		compile(`Study\s*ID\s*:\s*(\d+)`),
	},
	"accession_number": {
		compile(`Accession\s*Number:\s*(\d+)`),
		compile(`AccessionNumber:\s*(\d+)`),
		compile(`Accession\s*Number\s*:\s*(\d+)`),
	},
	"study_date": {
		compile(`Study\s*Date:\s*([^\n]+?)(?:\s+[A-Z]|\s*$)`),
		compile(`StudyDate:\s*([^\n]+?)(?:\s+[A-Z]|\s*$)`),
		compile(`Study\s*Date\s*:\s*([^\n]+?)(?:\s+[A-Z]|\s*$)`),
	},
	"birth_date": {
		compile(`Patient's\s*Birth\s*Date:\s*([^\n]+?)(?:\s+[A-Z]|\s*$)`),
		compile(`Patient's\s*Birth\s*Date\s*:\s*([^\n]+?)(?:\s+[A-Z]|\s*$)`),
		compile(`Birth\s*Date:\s*([^\n]+?)(?:\s+[A-Z]|\s*$)`),
		compile(`BirthDate:\s*([^\n]+?)(?:\s+[A-Z]|\s*$)`),
	},
	"sex": {
		compile(`Patient's\s*Sex:\s*(\w+)`),
		compile(`Patient's\s*Sex\s*:\s*(\w+)`),
		compile(`Sex:\s*(\w+)`),
		compile(`Gender:\s*(\w+)`),
	},

	// Device
	"device_name":   {compile(`Device Observer Name:\s*(.+)`)},
	"manufacturer":  {compile(`Device Observer Manufacturer:\s*(.+)`)},
	"model_name":    {compile(`Device Observer Model Name:\s*(.+)`)},
	"serial_number": {compile(`Device Observer Serial Number:\s*(.+)`)},
	"location":      {compile(`Device Observer Physical Location during observation:\s*(.+)`)},

	// Irradiation totals, units kept in the capture
	"start_irradiation": {compile(`Start of X-Ray Irradiation:\s*(.+)`)},
	"end_irradiation":   {compile(`End of X-Ray Irradiation:\s*(.+)`)},
	"total_events":      {compile(`Total Number of Irradiation Events\s*=\s*([\d.]+\s*events)`)},
	"total_dlp":         {compile(`CT Dose Length Product Total\s*=\s*([\d.]+\s*mGy\.cm)`)},

	// Acquisition identity
	"protocol":          {compile(`Acquisition Protocol:\s*(.+)`)},
	"target_region":     {compile(`Target Region:\s*(.+)`)},
	"acquisition_type":  {compile(`CT Acquisition Type:\s*(.+)`)},
	"procedure_context": {compile(`Procedure Context:\s*(.+)`)},
	"irradiation_uid":   {compile(`Irradiation Event UID:\s*(.+)`)},
	"comment":           {compile(`Comment:\s*(.+)`)},

	// Acquisition parameters
	"exposure_time":      {compile(`Exposure Time\s*=\s*([\d.]+\s*s)`)},
	"scanning_length":    {compile(`Scanning Length\s*=\s*([\d.]+\s*mm)`)},
	"single_collimation": {compile(`Nominal Single Collimation Width\s*=\s*([\d.]+\s*mm)`)},
	"total_collimation":  {compile(`Nominal Total Collimation Width\s*=\s*([\d.]+\s*mm)`)},
	"num_sources":        {compile(`Number of X-Ray Sources\s*=\s*([\d.]+\s*X-Ray sources)`)},
	"pitch_factor":       {compile(`Pitch Factor\s*=\s*([\d.]+\s*ratio)`)},

	// X-ray source. "X-Ray Tube Current" must not match inside
	// "Maximum X-Ray Tube Current", hence the guard.
	"source_id":     {compile(`Identification of the X-Ray Source:\s*(.+)`)},
	"kvp":           {compile(`KVP\s*=\s*([\d.]+\s*kV)`)},
	"max_current":   {compile(`Maximum X-Ray Tube Current\s*=\s*([\d.]+\s*mA)`)},
	"tube_current":  {compileNotAfter(`X-Ray Tube Current\s*=\s*([\d.]+\s*mA)`, "Maximum ")},
	"rotation_time": {compile(`Exposure Time per Rotation\s*=\s*([\d.]+\s*s)`)},

	// Dose indices
	"mean_ctdivol": {compile(`Mean CTDIvol\s*=\s*([\d.]+\s*mGy)`)},
	"phantom_type": {compile(`CTDIw Phantom Type:\s*(.+)`)},
	"dlp":          {compile(`DLP\s*=\s*([\d.]+\s*mGy\.cm)`)},
	"specific_dose": {
		compile(`Size Specific Dose Estimation\s*=\s*([\d.]+\s*mGy)`),
	},
	"alert_value": {
		compile(`CTDIvol Alert Value\s*=\s*([\d.]+\s*mGy)`),
	},
}
