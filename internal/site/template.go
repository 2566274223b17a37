package site

// pageHTML is the complete roster page. The markup and styling mirror the
// club site (qrqcrew.org), so the generated page can be dropped next to
// index.html as-is.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Member Roster | QRQ Crew Club</title>
    <link rel="icon" type="image/svg+xml" href="favicon.svg">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400;600;700&family=Source+Sans+Pro:wght@400;600;700&display=swap" rel="stylesheet">
    <style>
        :root {
            --navy: #1B3A57;
            --navy-dark: #132A40;
            --slate-blue: #4A7C9B;
            --light-blue: #7BA3BE;
            --cream: #FDFBF7;
            --white: #FFFFFF;
            --text-dark: #2C3E50;
            --text-muted: #5D6D7E;
            --border-light: #D5DFE5;
            --gold: #C9A227;
            --tech-blue: #4A90A4;
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Source Sans Pro', Georgia, serif;
            background-color: var(--cream);
            color: var(--text-dark);
            line-height: 1.7;
            min-height: 100vh;
        }

        .container {
            max-width: 960px;
            margin: 0 auto;
            padding: 0 24px;
        }

        header {
            background: var(--white);
            border-bottom: 3px solid var(--navy);
            padding: 30px 0;
        }

        .header-content {
            display: flex;
            align-items: center;
            justify-content: space-between;
            margin-top: 16px;
        }

        .back-link {
            display: inline-flex;
            align-items: center;
            gap: 8px;
            color: var(--slate-blue);
            text-decoration: none;
            font-size: 0.9rem;
            transition: color 0.3s ease;
        }

        .back-link:hover {
            color: var(--navy);
        }

        h1 {
            font-family: 'Playfair Display', Georgia, serif;
            font-size: 2rem;
            font-weight: 600;
            color: var(--navy);
        }

        .member-count {
            font-size: 0.9rem;
            color: var(--text-muted);
        }

        main {
            padding: 40px 0 80px;
        }

        .roster-header {
            display: grid;
            grid-template-columns: 80px 120px 1fr 140px;
            gap: 16px;
            padding: 16px 20px;
            background: var(--navy);
            color: var(--white);
            font-size: 0.75rem;
            font-weight: 600;
            letter-spacing: 0.1em;
            text-transform: uppercase;
        }

        .roster-table {
            background: var(--white);
            border: 1px solid var(--border-light);
            border-top: none;
        }

        .member-row {
            display: grid;
            grid-template-columns: 80px 120px 1fr 140px;
            gap: 16px;
            padding: 16px 20px;
            border-bottom: 1px solid var(--border-light);
            align-items: center;
            transition: background 0.2s ease;
        }

        .member-row:hover {
            background: rgba(74, 124, 155, 0.05);
        }

        .member-row:last-child {
            border-bottom: none;
        }

        .member-row.founder {
            background: linear-gradient(90deg, rgba(201, 162, 39, 0.08) 0%, transparent 100%);
        }

        .member-row.tech-guy {
            background: linear-gradient(90deg, rgba(74, 144, 164, 0.08) 0%, transparent 100%);
        }

        .tech-guy .qc-number {
            color: var(--tech-blue);
        }

        .qc-number {
            font-family: 'Playfair Display', Georgia, serif;
            font-weight: 600;
            color: var(--slate-blue);
        }

        .founder .qc-number {
            color: var(--gold);
        }

        .callsign {
            font-weight: 600;
            color: var(--navy);
        }

        .callsign a {
            color: var(--navy);
            text-decoration: none;
            transition: color 0.2s ease;
        }

        .callsign a:hover {
            color: var(--slate-blue);
            text-decoration: underline;
        }

        .name {
            color: var(--text-dark);
        }

        .founder-badge {
            display: inline-block;
            font-size: 0.65rem;
            font-weight: 600;
            letter-spacing: 0.05em;
            text-transform: uppercase;
            color: var(--gold);
            background: rgba(201, 162, 39, 0.15);
            padding: 2px 8px;
            margin-left: 8px;
            vertical-align: middle;
        }

        .tech-badge {
            display: inline-block;
            font-size: 0.65rem;
            font-weight: 600;
            letter-spacing: 0.05em;
            text-transform: uppercase;
            color: var(--tech-blue);
            background: rgba(74, 144, 164, 0.15);
            padding: 2px 8px;
            margin-left: 8px;
            vertical-align: middle;
        }

        .join-date {
            color: var(--text-muted);
            font-size: 0.9rem;
        }

        .roster-footer {
            margin-top: 40px;
            text-align: center;
            padding: 24px;
            background: var(--white);
            border: 1px solid var(--border-light);
        }

        .roster-footer p {
            color: var(--text-muted);
            font-size: 0.9rem;
            margin-bottom: 8px;
        }

        .roster-footer a {
            color: var(--slate-blue);
            text-decoration: none;
        }

        .roster-footer a:hover {
            text-decoration: underline;
        }

        .last-updated {
            font-size: 0.8rem;
            color: var(--text-muted);
            opacity: 0.7;
        }

        footer {
            background: var(--navy);
            color: var(--white);
            padding: 30px 0;
            text-align: center;
        }

        .footer-text {
            font-size: 0.85rem;
            opacity: 0.8;
        }

        .footer-text a {
            color: var(--light-blue);
            text-decoration: none;
        }

        .footer-text a:hover {
            text-decoration: underline;
        }

        @media (max-width: 700px) {
            .container {
                padding: 0 16px;
            }

            .roster-header {
                display: none;
            }

            .roster-table {
                border: none;
                background: transparent;
            }

            .member-row {
                display: block;
                background: var(--white);
                border: 1px solid var(--border-light);
                border-radius: 4px;
                padding: 16px;
                margin-bottom: 12px;
            }

            .member-row:hover {
                background: var(--white);
            }

            .member-row.founder {
                background: var(--white);
                border-left: 3px solid var(--gold);
            }

            .member-row.tech-guy {
                background: var(--white);
                border-left: 3px solid var(--tech-blue);
            }

            .tech-guy .qc-number {
                background: var(--tech-blue);
                color: var(--white);
            }

            .qc-number {
                display: inline-block;
                font-size: 0.8rem;
                background: var(--navy);
                color: var(--white);
                padding: 2px 10px;
                border-radius: 3px;
                margin-bottom: 8px;
            }

            .founder .qc-number {
                background: var(--gold);
                color: var(--white);
            }

            .callsign {
                display: block;
                font-size: 1.25rem;
                margin-bottom: 4px;
            }

            .name {
                display: block;
                font-size: 1rem;
                color: var(--text-dark);
                margin-bottom: 8px;
            }

            .founder-badge {
                display: inline-block;
                margin-left: 0;
                margin-top: 4px;
            }

            .join-date {
                display: block;
                font-size: 0.85rem;
                color: var(--text-muted);
            }

            .join-date::before {
                content: 'Joined ';
            }

            .header-content {
                flex-direction: column;
                align-items: flex-start;
                gap: 8px;
            }

            h1 {
                font-size: 1.5rem;
            }

            .roster-footer {
                margin-top: 20px;
            }
        }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <a href="index.html" class="back-link">&larr; Back to Home</a>
            <div class="header-content">
                <h1>Member Roster</h1>
                <span class="member-count">{{.CountText}}</span>
            </div>
        </div>
    </header>

    <main>
        <div class="container">
            <div class="roster-header">
                <span>QC #</span>
                <span>Callsign</span>
                <span>Name</span>
                <span>Joined</span>
            </div>

            <div class="roster-table">
{{- range .Rows}}
                <div class="member-row {{.RowClass}}">
                    <span class="qc-number">QC #{{.QCNumber}}</span>
                    <span class="callsign">
                        <a href="{{.LookupURL}}" target="_blank" rel="noopener">{{.Callsign}}</a>
                    </span>
                    <span class="name">{{.Name}}{{if .BadgeLabel}}<span class="{{.BadgeClass}}">{{.BadgeLabel}}</span>{{end}}</span>
                    <span class="join-date">{{.JoinDate}}</span>
                </div>
{{- end}}
            </div>

            <div class="roster-footer">
                <p>Want to join the crew? <a href="index.html#membership">Learn how to become a member</a></p>
                <p class="last-updated">Last updated: {{.LastUpdated}}</p>
            </div>
        </div>
    </main>

    <footer>
        <div class="container">
            <div class="footer-morse">&minus;&middot;&minus;&middot; &minus;&minus;&middot;&minus; / &minus;&minus;&middot;&minus; &minus;&middot;&minus;&middot;</div>
            <p class="footer-text">
                QRQ Crew Club &copy; 2025 &middot; <a href="index.html">Home</a>
            </p>
        </div>
    </footer>
</body>
</html>
`
