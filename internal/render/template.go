package render

// The inline stylesheet keeps the document self-contained for the print
// engine; the only external reference is the Bengali web font.
const sheetTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AI Powered English Learning Notes - {{.Title}}</title>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Noto+Sans+Bengali:wght@400;500;700&display=swap');

        @page {
            size: A4 portrait;
            margin: 10mm;
        }

        body {
            font-family: 'Arial', 'Noto Sans Bengali', sans-serif;
            margin: 0;
            padding: 15px;
            background-color: white;
            color: #333;
            line-height: 1.4;
            font-size: 20px;
        }

        .header {
            text-align: center;
            margin-bottom: 20px;
            border-bottom: 3px solid #2c3e50;
            padding-bottom: 15px;
        }

        .main-title {
            font-size: 28px;
            font-weight: bold;
            color: #2c3e50;
            margin-bottom: 8px;
        }

        .news-title {
            font-size: 24px;
            font-weight: bold;
            color: #e74c3c;
            margin-bottom: 8px;
            text-align: center;
        }

        .time-info {
            font-size: 16px;
            color: #7f8c8d;
            text-align: center;
            margin-bottom: 15px;
        }

        .section {
            margin-bottom: 22px;
            page-break-inside: avoid;
        }

        .section-title {
            font-size: 18px;
            font-weight: bold;
            color: #2c3e50;
            margin-bottom: 12px;
            border-bottom: 2px solid #3498db;
            padding-bottom: 5px;
        }

        .table-container {
            width: 100%;
            overflow-x: auto;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 20px;
        }

        th, td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: left;
            font-size: 16px;
            vertical-align: middle;
        }

        th {
            background-color: #3498db;
            color: white;
            font-weight: bold;
        }

        tr:nth-child(even) {
            background-color: #f2f2f2;
        }

        .bengali-text {
            font-family: 'Noto Sans Bengali', 'Arial', sans-serif;
            text-align: left;
            font-size: 16px;
        }

        .synonyms, .antonyms {
            font-size: 16px;
            text-align: left;
        }

        .synonyms {
            color: #27ae60;
        }

        .antonyms {
            color: #e74c3c;
        }

        .translation-section {
            margin-top: 20px;
        }

        .translation-content {
            background-color: #f8f9fa;
            padding: 12px;
            border-radius: 8px;
            border-left: 4px solid #3498db;
            font-size: 20px;
            line-height: 1.6;
            text-align: justify;
        }

        .english-text {
            font-size: 20px;
        }

        .sentence-example {
            background-color: #f0f8ff;
            padding: 8px;
            border-radius: 4px;
            margin: 4px 0;
            font-size: 14px;
            line-height: 1.4;
        }

        .sentence-example-en {
            color: #2c3e50;
            font-weight: 500;
        }

        .sentence-example-bn {
            color: #7f8c8d;
            font-style: italic;
        }

        .footer {
            text-align: center;
            margin-top: 20px;
            padding-top: 15px;
            border-top: 1px solid #e0e0e0;
            color: #7f8c8d;
            font-size: 13px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="main-title">{{.Banner}}</div>
        <div class="news-title">{{.Title}}</div>
        <div class="time-info">{{.Time}}</div>
    </div>
    <div class="section">
        <div class="section-title">Vocabulary Table</div>
        <div class="table-container">
            <table>
                <thead>
                    <tr>
                        <th>S/N</th>
                        <th>Word</th>
                        <th>Meaning in Bengali</th>
                        <th>Synonyms</th>
                        <th>Antonyms</th>
                    </tr>
                </thead>
                <tbody>
{{- range $i, $w := .Words}}
                    <tr>
                        <td>{{inc $i}}</td>
                        <td><strong>{{$w.English}}</strong></td>
                        <td class="bengali-text">{{$w.Bengali}}</td>
                        <td class="synonyms">{{join $w.Synonyms ", "}}</td>
                        <td class="antonyms">{{join $w.Antonyms ", "}}</td>
                    </tr>
{{- end}}
                </tbody>
            </table>
        </div>
    </div>
{{- if .Sentences}}
    <div class="section">
        <div class="section-title">Sentence Examples with Context</div>
        <div class="table-container">
            <table>
                <thead>
                    <tr>
                        <th>S/N</th>
                        <th>Word</th>
                        <th>Meaning in Bengali</th>
                        <th>Example Sentence (English)</th>
                        <th>Example Sentence (Bengali)</th>
                    </tr>
                </thead>
                <tbody>
{{- range $i, $s := .Sentences}}
                    <tr>
                        <td>{{inc $i}}</td>
                        <td><strong>{{$s.Word}}</strong></td>
                        <td class="bengali-text">{{$s.MeaningBn}}</td>
                        <td class="sentence-example sentence-example-en">{{$s.ExampleEn}}</td>
                        <td class="bengali-text sentence-example sentence-example-bn">{{$s.ExampleBn}}</td>
                    </tr>
{{- end}}
                </tbody>
            </table>
        </div>
    </div>
{{- end}}
{{- if .HasMessage}}
    <div class="section translation-section">
        <div class="section-title">English-Bengali Phrase by Phrase Translation</div>
        <div class="translation-content">
            <div class="english-text">{{.Message}}</div>
        </div>
    </div>
{{- end}}
    <div class="footer">
        {{.Footer}}
    </div>
</body>
</html>
`
