// file: internals/features/reports/view/report_html.go
//
// Render ReportDocument ke HTML siap cetak. Dimensi halaman mengikuti
// kertas A4 (21cm x 29.7cm, margin 1.5cm) supaya fasilitas print/PDF
// browser menghasilkan pemisah halaman yang benar.
package view

import (
	"bytes"
	"html/template"

	"raportku_backend/internals/features/reports/service"
)

var reportTmpl = template.Must(template.New("report").Parse(reportHTML))

// RenderHTML menghasilkan satu halaman HTML lengkap dari dokumen raport.
func RenderHTML(doc *service.ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const reportHTML = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Raport {{.Cover.StudentName}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #000; background: #f1f5f9; margin: 0; }
  .page {
    position: relative; background: #fff; width: 21cm; min-height: 29.7cm;
    margin: 0 auto 2rem; padding: 1.5cm; box-sizing: border-box;
    box-shadow: 0 1px 6px rgba(0,0,0,.2); line-height: 1.3;
  }
  @media print {
    body { background: #fff; }
    .page { box-shadow: none; margin: 0; width: 100%; min-height: auto; page-break-after: always; }
  }
  h1, h2, h3, h4 { margin: 0 0 .5rem; }
  .center { text-align: center; }
  .upper { text-transform: uppercase; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 4px 6px; vertical-align: top; }
  .bordered, .bordered td { border: 1px solid #000; }
  .kv-label { width: 200px; font-weight: bold; }
  .kv-sep { width: 20px; }
  .rule { border-top: 2px double #000; margin: 1.5rem 0; }
  .sig-block { text-align: center; margin-top: 2rem; }
  .sig-space { height: 5rem; }
  .sig-name { font-weight: bold; text-decoration: underline; }
  .frame { border: 1px solid #000; margin-bottom: 1rem; }
  .frame-title { background: #e5e7eb; border-bottom: 1px solid #000; font-weight: bold; font-size: .9rem; padding: 4px 8px; }
  .frame-body { display: flex; min-height: 200px; }
  .frame-text { flex: 1; padding: 1rem; text-align: justify; border-right: 1px solid #000; white-space: pre-wrap; }
  .frame-photo { width: 200px; display: flex; align-items: center; justify-content: center; color: #9ca3af; font-style: italic; font-size: .8rem; }
  .cover-box { border: 4px double #000; border-radius: 8px; padding: 2rem; width: 75%; margin: 0 auto; text-align: center; }
  .cover-name { font-size: 1.5rem; font-weight: bold; border-bottom: 1px solid #000; display: inline-block; min-width: 200px; padding-bottom: 4px; }
  .photo-box { border: 1px solid #000; width: 3cm; height: 4cm; display: flex; align-items: center; justify-content: center; color: #9ca3af; font-size: .75rem; }
  .reflection { border: 1px solid #000; padding: 8px; min-height: 100px; white-space: pre-wrap; }
  .hint { color: #9ca3af; font-style: italic; font-size: .75rem; }
</style>
</head>
<body>

<!-- Halaman 1: Sampul -->
<section class="page center">
  <h1>{{.Cover.SchoolName}}</h1>
  <p>{{.Cover.SchoolAddress}}</p>
  <p><strong>NPSN: {{.Cover.NPSN}}</strong></p>
  <h2 class="upper" style="margin-top:6rem">{{.Cover.TitleLine1}}<br>{{.Cover.TitleLine2}}</h2>
  <p><strong>{{.Cover.SchoolYear}}</strong></p>
  <div class="cover-box" style="margin-top:4rem">
    <p>Nama Anak Didik:</p>
    <p class="cover-name">{{.Cover.StudentName}}</p>
    <p><strong>{{.Cover.StudentNumbers}}</strong></p>
  </div>
</section>

<!-- Halaman 2: Data sekolah -->
<section class="page">
  <h2 class="center upper">Laporan Asesmen Capaian Pembelajaran<br>Anak Didik Taman Kanak-Kanak</h2>
  <div class="rule"></div>
  <h3 class="center" style="text-decoration:underline">{{.SchoolData.Heading}}</h3>
  <table>
    {{range .SchoolData.Rows}}
    <tr><td class="kv-label">{{.Label}}</td><td class="kv-sep">:</td><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  <div class="sig-block" style="margin-left:auto;width:260px">
    <p>{{.SchoolData.Signature.PlaceDate}}<br>{{.SchoolData.Signature.Role}}</p>
    <div class="sig-space"></div>
    <p class="sig-name">{{.SchoolData.Signature.Name}}</p>
  </div>
</section>

<!-- Halaman 3: Data diri anak -->
<section class="page">
  <h3 class="center upper" style="text-decoration:underline">{{.Identity.Heading}}</h3>
  <h4>A. Identitas Anak</h4>
  <table style="margin-bottom:2rem">
    {{range .Identity.StudentRows}}
    <tr><td style="width:200px;padding-left:1rem">{{.Label}}</td><td class="kv-sep">:</td><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  <h4>B. Identitas Orang Tua / Wali</h4>
  <table style="margin-bottom:3rem">
    {{range .Identity.ParentRows}}
    <tr><td style="width:200px;padding-left:1rem">{{.Label}}</td><td class="kv-sep">:</td><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  <div style="display:flex;justify-content:space-between;align-items:flex-end">
    <div class="photo-box">{{.Identity.PhotoBoxLabel}}</div>
    <div class="sig-block" style="width:260px">
      <p>{{.Identity.Signature.PlaceDate}}<br>{{.Identity.Signature.Role}}</p>
      <div class="sig-space"></div>
      <p class="sig-name">{{.Identity.Signature.Name}}</p>
    </div>
  </div>
</section>

<!-- Halaman 4 & 5: Capaian pembelajaran -->
{{template "curriculum" .Intrakurikuler}}
{{template "curriculum" .LiterasiProjek}}

<!-- Halaman 6: Kesehatan, kehadiran, refleksi -->
<section class="page" style="font-size:.9rem">
  <h4 class="upper">{{.Closing.GrowthHeading}}</h4>
  <table class="bordered" style="margin-bottom:1rem">
    <tr class="center"><td style="width:40px"><strong>No</strong></td><td><strong>Aspek Pertumbuhan</strong></td><td style="width:130px"><strong>Semester 1</strong></td><td style="width:130px"><strong>Semester 2</strong></td></tr>
    {{range .Closing.GrowthRows}}
    <tr><td class="center">{{.No}}</td><td>{{.Aspect}}</td><td class="center">{{.Semester1}}</td><td class="center">{{.Semester2}}</td></tr>
    {{end}}
  </table>

  <p><strong>{{.Closing.HealthHeading}}</strong></p>
  <table class="bordered" style="margin-bottom:1.5rem">
    <tr class="center"><td style="width:40px"><strong>No</strong></td><td><strong>Pemeriksaan</strong></td><td style="width:250px"><strong>Keterangan</strong></td></tr>
    {{range .Closing.HealthRows}}
    <tr><td class="center">{{.No}}</td><td>{{.Examination}}</td><td class="center">{{.Result}}</td></tr>
    {{end}}
  </table>

  <h4 class="upper">{{.Closing.AttendanceHeading}}</h4>
  <table class="bordered" style="width:50%;margin-bottom:1.5rem">
    {{range .Closing.AttendanceRows}}
    <tr><td>{{.Label}}</td><td class="center" style="width:100px">{{.Value}}</td></tr>
    {{end}}
  </table>

  <h4 class="upper">{{.Closing.ReflectionHeading}}</h4>
  <div class="reflection" style="margin-bottom:1.5rem">
    {{if .Closing.Reflection}}{{.Closing.Reflection}}{{else}}<span class="hint">{{.Closing.ReflectionHint}}</span>{{end}}
  </div>

  <div class="frame" style="margin-bottom:3rem">
    <div class="frame-title">{{.Closing.TeacherNoteHeading}}</div>
    <div style="padding:1rem;min-height:100px;white-space:pre-wrap">{{.Closing.TeacherNote}}</div>
  </div>

  <div style="display:flex;justify-content:space-around;text-align:center">
    <div>
      <p>{{.Closing.ParentSignature.Role}}</p>
      <div class="sig-space"></div>
      <p><strong>{{.Closing.ParentSignature.Name}}</strong></p>
    </div>
    <div>
      <p>{{.Closing.TeacherSignature.PlaceDate}}<br>{{.Closing.TeacherSignature.Role}}</p>
      <div class="sig-space"></div>
      <p class="sig-name">{{.Closing.TeacherSignature.Name}}</p>
    </div>
  </div>
  <div class="sig-block">
    <p>{{.Closing.PrincipalSignature.Preamble}}<br>{{.Closing.PrincipalSignature.Role}}</p>
    <div class="sig-space"></div>
    <p class="sig-name">{{.Closing.PrincipalSignature.Name}}</p>
  </div>
</section>

</body>
</html>

{{define "curriculum"}}
<section class="page">
  <div class="center">
    <h3 class="upper">{{.Heading}}</h3>
    <p><strong>{{.SemesterLabel}}</strong></p>
  </div>
  <div class="rule"></div>
  {{range .Groups}}
    {{if .Heading}}<h4 class="upper" style="font-size:.9rem">{{.Heading}}</h4>{{end}}
    {{range .Sections}}
    <div class="frame">
      <div class="frame-title">{{.Number}}. {{.Title}}</div>
      <div class="frame-body">
        <div class="frame-text">{{.Body}}</div>
        <div class="frame-photo">{{.PhotoCaption}}</div>
      </div>
    </div>
    {{end}}
  {{end}}
</section>
{{end}}
`
