package help

// QuickstartYAML is printed by `wordfreq quickstart`.
const QuickstartYAML = `# wordfreq Quick Start

tokens:
  - "Letters A-Z are lowercased; anything else except the apostrophe splits words"
  - "Digits, hyphens and dashes are separators: Nice-Book! -> nice, book"
  - "Single letters and bare fragments like 's are dropped"
  - "Apostrophes inside words are kept: It's -> it's, Zak's -> zak's"

commands:
  count: |
    wordfreq count TheGreatGatsby.txt
    # writes output/WordCountResults-TheGreatGatsby.txt, then asks for words

  count_quietly: |
    wordfreq --quiet count --no-prompt --record books/Moby.txt

  top_words: |
    wordfreq top --n 25 --stop-words TheGreatGatsby.txt
    wordfreq top --sort alpha --format json TheGreatGatsby.txt

  csv_export: |
    wordfreq export --out gatsby.csv --stop-words TheGreatGatsby.txt

  web_page: |
    wordfreq count --no-prompt https://example.com/article.html

  batch: |
    wordfreq batch --workers 8 --record books/*.txt
    wordfreq batch --from reading-list.txt --format json

  history: |
    wordfreq history list
    wordfreq history show
    wordfreq history word gatsby 1a2b3c4d
    wordfreq history delete 1a2b3c4d

report_format: |
  Total words counted: <total>
  <word>: <count>      (one line per word, ascending)

config_file:
  path: "wordfreq.yaml (or --config <file>)"
  keys:
    output_dir: "output"
    top: 10
    workers: 4
    stop_words: "[] (empty = built-in list)"
    db_path: "'' (empty = wordfreq.db next to the binary)"
    cache_dir: ".cache/wordfreq"
    cache_ttl: "24h"

error_behavior:
  - "Unreadable documents fail the command and write no report"
  - "batch keeps going and lists failures in the summary manifest"
  - "Exit codes: 0=success, 1=any failure"
`
